package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rupeebooks/backend/internal/domain/ledger"
)

// Line is one labelled amount inside a report section.
type Line struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Section is a displayable block of report lines. The last line is always
// the section subtotal, present even when the section is empty.
type Section struct {
	Title string          `json:"title"`
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// BalanceSheetLine is one classified account row of the balance sheet.
type BalanceSheetLine struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// BalanceSheetReport is the computed position as of a date. It is an
// ephemeral value object: generated, serialised, never persisted.
type BalanceSheetReport struct {
	ReportID    string    `json:"reportId"`
	AsOfDate    string    `json:"asOfDate"`
	GeneratedAt time.Time `json:"generatedAt"`

	CurrentAssets       []BalanceSheetLine `json:"currentAssets"`
	FixedAssets         []BalanceSheetLine `json:"fixedAssets"`
	OtherAssets         []BalanceSheetLine `json:"otherAssets"`
	CurrentLiabilities  []BalanceSheetLine `json:"currentLiabilities"`
	LongTermLiabilities []BalanceSheetLine `json:"longTermLiabilities"`

	TotalCurrentAssets       decimal.Decimal `json:"totalCurrentAssets"`
	TotalFixedAssets         decimal.Decimal `json:"totalFixedAssets"`
	TotalOtherAssets         decimal.Decimal `json:"totalOtherAssets"`
	TotalAssets              decimal.Decimal `json:"totalAssets"`
	TotalCurrentLiabilities  decimal.Decimal `json:"totalCurrentLiabilities"`
	TotalLongTermLiabilities decimal.Decimal `json:"totalLongTermLiabilities"`
	TotalLiabilities         decimal.Decimal `json:"totalLiabilities"`

	Capital           decimal.Decimal `json:"capital"`
	RetainedEarnings  decimal.Decimal `json:"retainedEarnings"`
	CurrentYearProfit decimal.Decimal `json:"currentYearProfit"`
	TotalEquity       decimal.Decimal `json:"totalEquity"`

	// Difference is totalAssets minus (totalLiabilities + totalEquity),
	// reported whether or not the books balance.
	Difference decimal.Decimal `json:"difference"`
	Balanced   bool            `json:"balanced"`

	// Sections is the line-structured view for renderers.
	Sections []Section `json:"sections"`
}

// CashFlowStatement is the computed cash movement for a period, split into
// the three activities. Ephemeral like the balance sheet.
type CashFlowStatement struct {
	ReportID    string    `json:"reportId"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	GeneratedAt time.Time `json:"generatedAt"`

	Operating Section `json:"operating"`
	Investing Section `json:"investing"`
	Financing Section `json:"financing"`

	OpeningCash decimal.Decimal `json:"openingCash"`
	ClosingCash decimal.Decimal `json:"closingCash"`
	NetCashFlow decimal.Decimal `json:"netCashFlow"`
}

// ChartEntry pairs an account with the classification it reports under.
type ChartEntry struct {
	Account        ledger.Account        `json:"account"`
	Classification ledger.Classification `json:"classification"`
}
