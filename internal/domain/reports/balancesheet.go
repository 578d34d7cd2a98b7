package reports

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rupeebooks/backend/internal/domain/ledger"
)

// defaultEquationTolerance matches the posting tolerance: the books are
// considered balanced when assets and liabilities plus equity agree within
// a paisa.
var defaultEquationTolerance = decimal.New(1, -2) // 0.01

// BalanceSheetBuilder aggregates classified account balances into the
// statement of position and checks the accounting equation.
type BalanceSheetBuilder struct {
	classifier *ledger.Classifier
	tolerance  decimal.Decimal
}

// NewBalanceSheetBuilder creates a builder using the given classifier and
// the standard tolerance.
func NewBalanceSheetBuilder(classifier *ledger.Classifier) *BalanceSheetBuilder {
	return &BalanceSheetBuilder{classifier: classifier, tolerance: defaultEquationTolerance}
}

// Build classifies every account balance and aggregates the buckets as of
// the given date. Accounts whose net balance is zero are left out of every
// bucket. Assets report their debit-side net; liabilities and equity
// report the credit-side net.
func (b *BalanceSheetBuilder) Build(balances []ledger.AccountBalance, asOfDate string) *BalanceSheetReport {
	report := &BalanceSheetReport{
		ReportID:    uuid.New().String(),
		AsOfDate:    asOfDate,
		GeneratedAt: time.Now().UTC(),
	}

	revenue := decimal.Zero
	expenses := decimal.Zero

	for _, bal := range balances {
		net := bal.Net()
		if net.IsZero() {
			continue
		}

		switch b.classifier.Classify(bal.Account) {
		case ledger.ClassificationCurrentAsset:
			report.CurrentAssets = append(report.CurrentAssets, balanceLine(bal.Account, net))
			report.TotalCurrentAssets = report.TotalCurrentAssets.Add(net)
		case ledger.ClassificationFixedAsset:
			report.FixedAssets = append(report.FixedAssets, balanceLine(bal.Account, net))
			report.TotalFixedAssets = report.TotalFixedAssets.Add(net)
		case ledger.ClassificationOtherAsset:
			report.OtherAssets = append(report.OtherAssets, balanceLine(bal.Account, net))
			report.TotalOtherAssets = report.TotalOtherAssets.Add(net)
		case ledger.ClassificationCurrentLiability:
			report.CurrentLiabilities = append(report.CurrentLiabilities, balanceLine(bal.Account, net.Neg()))
			report.TotalCurrentLiabilities = report.TotalCurrentLiabilities.Add(net.Neg())
		case ledger.ClassificationLongTermLiability:
			report.LongTermLiabilities = append(report.LongTermLiabilities, balanceLine(bal.Account, net.Neg()))
			report.TotalLongTermLiabilities = report.TotalLongTermLiabilities.Add(net.Neg())
		case ledger.ClassificationCapital:
			report.Capital = report.Capital.Add(net.Neg())
		case ledger.ClassificationRetainedEarnings:
			report.RetainedEarnings = report.RetainedEarnings.Add(net.Neg())
		case ledger.ClassificationRevenue:
			revenue = revenue.Add(net.Neg())
		case ledger.ClassificationExpense:
			expenses = expenses.Add(net)
		}
	}

	report.CurrentYearProfit = revenue.Sub(expenses)
	report.TotalAssets = report.TotalCurrentAssets.Add(report.TotalFixedAssets).Add(report.TotalOtherAssets)
	report.TotalLiabilities = report.TotalCurrentLiabilities.Add(report.TotalLongTermLiabilities)
	report.TotalEquity = report.Capital.Add(report.RetainedEarnings).Add(report.CurrentYearProfit)
	report.Difference = report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity))
	report.Balanced = report.Difference.Abs().LessThan(b.tolerance)
	report.Sections = b.assembleSections(report)

	return report
}

// ValidateAccountingEquation renders the equation check as a diagnostic:
// "balanced", or a message naming the heavier side and by how much.
func ValidateAccountingEquation(report *BalanceSheetReport) string {
	if report.Balanced {
		return "balanced"
	}
	if report.Difference.IsPositive() {
		return fmt.Sprintf("assets exceed liabilities and equity by %s", report.Difference.StringFixed(2))
	}
	return fmt.Sprintf("liabilities and equity exceed assets by %s", report.Difference.Abs().StringFixed(2))
}

// assembleSections builds the displayable view of the aggregated buckets.
func (b *BalanceSheetBuilder) assembleSections(report *BalanceSheetReport) []Section {
	currentAssets := NewSectionBuilder("Current Assets", "Total current assets")
	for _, line := range report.CurrentAssets {
		currentAssets.Add(lineLabel(line), line.Amount)
	}
	fixedAssets := NewSectionBuilder("Fixed Assets", "Total fixed assets")
	for _, line := range report.FixedAssets {
		fixedAssets.Add(lineLabel(line), line.Amount)
	}
	otherAssets := NewSectionBuilder("Other Assets", "Total other assets")
	for _, line := range report.OtherAssets {
		otherAssets.Add(lineLabel(line), line.Amount)
	}
	currentLiabilities := NewSectionBuilder("Current Liabilities", "Total current liabilities")
	for _, line := range report.CurrentLiabilities {
		currentLiabilities.Add(lineLabel(line), line.Amount)
	}
	longTermLiabilities := NewSectionBuilder("Long-Term Liabilities", "Total long-term liabilities")
	for _, line := range report.LongTermLiabilities {
		longTermLiabilities.Add(lineLabel(line), line.Amount)
	}
	equity := NewSectionBuilder("Equity", "Total equity")
	equity.Add("Capital", report.Capital)
	equity.Add("Retained earnings", report.RetainedEarnings)
	equity.Add("Current year profit", report.CurrentYearProfit)

	return []Section{
		currentAssets.Build(),
		fixedAssets.Build(),
		otherAssets.Build(),
		currentLiabilities.Build(),
		longTermLiabilities.Build(),
		equity.Build(),
	}
}

func balanceLine(account ledger.Account, amount decimal.Decimal) BalanceSheetLine {
	return BalanceSheetLine{
		AccountCode: account.Code,
		AccountName: account.Name,
		Amount:      amount,
	}
}

func lineLabel(line BalanceSheetLine) string {
	if line.AccountCode == "" {
		return line.AccountName
	}
	if line.AccountName == "" {
		return line.AccountCode
	}
	return fmt.Sprintf("%s %s", line.AccountCode, line.AccountName)
}
