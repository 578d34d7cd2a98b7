package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rupeebooks/backend/internal/domain/ledger"
)

// Cash flow line labels. Each aggregates every matching transaction in the
// period into one counted line.
const (
	labelCustomerReceipts = "Cash received from customers"
	labelVendorPayments   = "Cash paid to vendors"
	labelOtherOperating   = "Other operating activities"
	labelAssetPurchases   = "Asset purchases"
	labelLoanProceeds     = "Loan proceeds"
	labelLoanRepayments   = "Loan repayments"
)

// CashFlowCategorizer scans posted transactions for movement on designated
// cash accounts and buckets it into operating, investing and financing
// activities.
type CashFlowCategorizer struct{}

// NewCashFlowCategorizer creates a categorizer.
func NewCashFlowCategorizer() *CashFlowCategorizer {
	return &CashFlowCategorizer{}
}

type aggregate struct {
	count int
	total decimal.Decimal
}

func (a *aggregate) add(amount decimal.Decimal) {
	a.count++
	a.total = a.total.Add(amount)
}

// Categorize builds the cash flow statement for the period. Transactions
// are considered only when POSTED, dated inside the range and touching at
// least one designated cash account (bank accounts or accounts named like
// cash ledgers). Accrual documents (invoices, bills) never move cash and
// are excluded.
func (c *CashFlowCategorizer) Categorize(transactions []ledger.Transaction, accounts []ledger.Account, period ledger.DateRange) *CashFlowStatement {
	accountsByID := make(map[string]ledger.Account, len(accounts))
	for _, a := range accounts {
		accountsByID[a.AccountID] = a
	}

	var customerReceipts, vendorPayments, otherOperating aggregate
	var assetPurchases aggregate
	var loanProceeds, loanRepayments aggregate

	for _, txn := range transactions {
		if txn.Status != ledger.StatusPosted || !period.Contains(txn.Date) {
			continue
		}

		cashImpact, touchesCash := c.cashImpact(txn, accountsByID)
		if !touchesCash {
			continue
		}

		switch txn.Type {
		case ledger.TransactionTypeCustomerPayment:
			customerReceipts.add(cashImpact)
		case ledger.TransactionTypeVendorPayment:
			vendorPayments.add(cashImpact)
		case ledger.TransactionTypeCustomerInvoice, ledger.TransactionTypeVendorBill:
			// Accrual-only documents.
		case ledger.TransactionTypeJournalEntry:
			hasAsset, hasLiability := touchedAccountTypes(txn, accountsByID)
			switch {
			// The asset check runs first and counts every leg, including
			// the cash leg, which is itself ASSET-typed. A loan repayment
			// therefore lands in investing, not financing.
			case hasAsset && cashImpact.IsNegative():
				assetPurchases.add(cashImpact)
			case hasLiability:
				if cashImpact.IsNegative() {
					loanRepayments.add(cashImpact)
				} else {
					loanProceeds.add(cashImpact)
				}
			default:
				otherOperating.add(cashImpact)
			}
		default:
			otherOperating.add(cashImpact)
		}
	}

	operating := NewSectionBuilder("Operating Activities", "Net cash from operating activities")
	if customerReceipts.count > 0 {
		operating.AddCounted(labelCustomerReceipts, customerReceipts.count, customerReceipts.total)
	}
	if vendorPayments.count > 0 {
		operating.AddCounted(labelVendorPayments, vendorPayments.count, vendorPayments.total)
	}
	if otherOperating.count > 0 {
		operating.AddCounted(labelOtherOperating, otherOperating.count, otherOperating.total)
	}

	investing := NewSectionBuilder("Investing Activities", "Net cash from investing activities")
	if assetPurchases.count > 0 {
		investing.AddCounted(labelAssetPurchases, assetPurchases.count, assetPurchases.total)
	}

	financing := NewSectionBuilder("Financing Activities", "Net cash from financing activities")
	if loanProceeds.count > 0 {
		financing.AddCounted(labelLoanProceeds, loanProceeds.count, loanProceeds.total)
	}
	if loanRepayments.count > 0 {
		financing.AddCounted(labelLoanRepayments, loanRepayments.count, loanRepayments.total)
	}

	netCashFlow := operating.Total().Add(investing.Total()).Add(financing.Total())
	openingCash := openingCashBalance(accounts)

	return &CashFlowStatement{
		ReportID:    uuid.New().String(),
		StartDate:   period.StartDate,
		EndDate:     period.EndDate,
		GeneratedAt: time.Now().UTC(),
		Operating:   operating.Build(),
		Investing:   investing.Build(),
		Financing:   financing.Build(),
		OpeningCash: openingCash,
		ClosingCash: openingCash.Add(netCashFlow),
		NetCashFlow: netCashFlow,
	}
}

// cashImpact sums debit minus credit over the transaction's entries on
// designated cash accounts. The second return value reports whether any
// cash account was touched at all.
func (c *CashFlowCategorizer) cashImpact(txn ledger.Transaction, accountsByID map[string]ledger.Account) (decimal.Decimal, bool) {
	impact := decimal.Zero
	touched := false
	for _, e := range txn.Entries {
		account, ok := accountsByID[e.AccountID]
		if !ok || !account.IsCashAccount() {
			continue
		}
		impact = impact.Add(e.Debit.Sub(e.Credit))
		touched = true
	}
	return impact, touched
}

// touchedAccountTypes reports whether any entry of the transaction sits on
// an ASSET-typed or LIABILITY-typed account. Entries on unknown accounts
// contribute nothing.
func touchedAccountTypes(txn ledger.Transaction, accountsByID map[string]ledger.Account) (hasAsset, hasLiability bool) {
	for _, e := range txn.Entries {
		account, ok := accountsByID[e.AccountID]
		if !ok {
			continue
		}
		switch account.AccountType {
		case ledger.AccountTypeAsset:
			hasAsset = true
		case ledger.AccountTypeLiability:
			hasLiability = true
		}
	}
	return hasAsset, hasLiability
}

// openingCashBalance sums the static opening balances of the designated
// cash accounts. The report's start date is not applied here, so later
// periods do not roll the opening figure forward; changing that is an open
// product decision.
func openingCashBalance(accounts []ledger.Account) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range accounts {
		if a.IsCashAccount() {
			sum = sum.Add(a.OpeningBalance)
		}
	}
	return sum
}
