package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rupeebooks/backend/internal/domain/tax"
)

// AccountType is the fundamental category an account is declared with by
// the account-management collaborator that owns the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeIncome    AccountType = "INCOME"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// TransactionType drives cash flow bucketing. The set is open: unknown
// types fall back to operating treatment.
type TransactionType string

const (
	TransactionTypeCustomerPayment TransactionType = "CUSTOMER_PAYMENT"
	TransactionTypeVendorPayment   TransactionType = "VENDOR_PAYMENT"
	TransactionTypeCustomerInvoice TransactionType = "CUSTOMER_INVOICE"
	TransactionTypeVendorBill      TransactionType = "VENDOR_BILL"
	TransactionTypeJournalEntry    TransactionType = "JOURNAL_ENTRY"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusDraft  TransactionStatus = "DRAFT"
	StatusPosted TransactionStatus = "POSTED"
	StatusVoid   TransactionStatus = "VOID"
)

// Account is a read-only snapshot of one chart-of-accounts record. Leaf
// accounts (IsGroup=false) accumulate entries; group accounts are
// informational headers only.
type Account struct {
	AccountID      string          `json:"accountId"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	IsBankAccount  bool            `json:"isBankAccount"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	IsGroup        bool            `json:"isGroup"`
	Currency       string          `json:"currency,omitempty"`
}

// IsCashAccount reports whether the account is treated as cash for the
// cash flow statement: bank accounts plus anything named like a cash
// ledger ("Petty Cash", "Cash in Hand").
func (a Account) IsCashAccount() bool {
	return a.IsBankAccount || strings.Contains(strings.ToLower(a.Name), "cash")
}

// Entry is a single debit or credit leg of a transaction. Exactly one of
// Debit/Credit is expected to be non-zero; the upstream entry forms are
// assumed to enforce that.
type Entry struct {
	AccountID string          `json:"accountId"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// Transaction is a business document with its double-entry legs. Once
// POSTED it is immutable; corrections happen through reversing
// transactions, never in place.
type Transaction struct {
	TransactionID string            `json:"transactionId"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Date          string            `json:"date"` // YYYY-MM-DD
	Description   string            `json:"description,omitempty"`
	Entries       []Entry           `json:"entries"`
	TotalAmount   decimal.Decimal   `json:"totalAmount"`
	GSTDetails    *tax.GSTDetails   `json:"gstDetails,omitempty"`
	TDSDetails    *tax.TDSDetails   `json:"tdsDetails,omitempty"`
}

// TotalDebits sums the debit side of all entries.
func (t Transaction) TotalDebits() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range t.Entries {
		sum = sum.Add(e.Debit)
	}
	return sum
}

// TotalCredits sums the credit side of all entries.
func (t Transaction) TotalCredits() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range t.Entries {
		sum = sum.Add(e.Credit)
	}
	return sum
}

// AccountBalance pairs an account with its accumulated debit and credit
// totals for a reporting period.
type AccountBalance struct {
	Account Account         `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// Net returns debit minus credit. Asset and expense accounts normally
// carry a positive net, liability, equity and income accounts a negative
// one.
func (b AccountBalance) Net() decimal.Decimal {
	return b.Debit.Sub(b.Credit)
}
