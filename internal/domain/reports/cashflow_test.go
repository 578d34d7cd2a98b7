package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupeebooks/backend/internal/domain/ledger"
)

var cashFlowPeriod = ledger.DateRange{StartDate: "2024-04-01", EndDate: "2025-03-31"}

func cashFlowAccounts() []ledger.Account {
	return []ledger.Account{
		{AccountID: "acc-bank", Code: "1101", Name: "HDFC Bank", AccountType: ledger.AccountTypeAsset, IsBankAccount: true, OpeningBalance: dec("100000")},
		{AccountID: "acc-petty", Code: "1102", Name: "Petty Cash", AccountType: ledger.AccountTypeAsset, OpeningBalance: dec("5000")},
		{AccountID: "acc-ar", Code: "1200", Name: "Accounts Receivable", AccountType: ledger.AccountTypeAsset, OpeningBalance: dec("70000")},
		{AccountID: "acc-ap", Code: "2100", Name: "Accounts Payable", AccountType: ledger.AccountTypeLiability},
		{AccountID: "acc-loan", Code: "2500", Name: "Term Loan - HDFC", AccountType: ledger.AccountTypeLiability},
		{AccountID: "acc-equip", Code: "1500", Name: "Office Equipment", AccountType: ledger.AccountTypeAsset},
		{AccountID: "acc-sales", Code: "4000", Name: "Sales", AccountType: ledger.AccountTypeIncome},
		{AccountID: "acc-rent", Code: "5100", Name: "Rent Expense", AccountType: ledger.AccountTypeExpense},
	}
}

func posted(id string, txnType ledger.TransactionType, date string, entries ...ledger.Entry) ledger.Transaction {
	return ledger.Transaction{
		TransactionID: id,
		Type:          txnType,
		Status:        ledger.StatusPosted,
		Date:          date,
		Entries:       entries,
	}
}

func TestCashFlowCategorizer_CustomerPayment(t *testing.T) {
	categorizer := NewCashFlowCategorizer()

	// A customer settles an invoice into the bank.
	transactions := []ledger.Transaction{
		posted("txn-1", ledger.TransactionTypeCustomerPayment, "2024-06-01",
			ledger.Entry{AccountID: "acc-bank", Debit: dec("50000")},
			ledger.Entry{AccountID: "acc-ar", Credit: dec("50000")},
		),
	}

	statement := categorizer.Categorize(transactions, cashFlowAccounts(), cashFlowPeriod)

	assert.True(t, dec("50000").Equal(statement.Operating.Total))
	require.Len(t, statement.Operating.Lines, 2)
	assert.Contains(t, statement.Operating.Lines[0].Label, "Cash received from customers")
	assert.True(t, dec("50000").Equal(statement.Operating.Lines[0].Amount))
	assert.True(t, dec("50000").Equal(statement.NetCashFlow))

	// Opening cash is the bank plus petty cash openings only.
	assert.True(t, dec("105000").Equal(statement.OpeningCash))
	assert.True(t, dec("155000").Equal(statement.ClosingCash))
}

func TestCashFlowCategorizer_VendorPayment(t *testing.T) {
	categorizer := NewCashFlowCategorizer()

	// Paying a supplier from the bank is a negative operating flow.
	transactions := []ledger.Transaction{
		posted("txn-1", ledger.TransactionTypeVendorPayment, "2024-06-05",
			ledger.Entry{AccountID: "acc-ap", Debit: dec("30000")},
			ledger.Entry{AccountID: "acc-bank", Credit: dec("30000")},
		),
	}

	statement := categorizer.Categorize(transactions, cashFlowAccounts(), cashFlowPeriod)

	assert.True(t, dec("-30000").Equal(statement.Operating.Total))
	assert.Contains(t, statement.Operating.Lines[0].Label, "Cash paid to vendors")
	assert.True(t, dec("-30000").Equal(statement.NetCashFlow))
}

func TestCashFlowCategorizer_Exclusions(t *testing.T) {
	categorizer := NewCashFlowCategorizer()

	t.Run("Accrual Documents Never Move Cash", func(t *testing.T) {
		// Even a miscoded invoice with a bank leg is excluded.
		transactions := []ledger.Transaction{
			posted("txn-1", ledger.TransactionTypeCustomerInvoice, "2024-06-01",
				ledger.Entry{AccountID: "acc-bank", Debit: dec("59000")},
				ledger.Entry{AccountID: "acc-sales", Credit: dec("59000")},
			),
			posted("txn-2", ledger.TransactionTypeVendorBill, "2024-06-02",
				ledger.Entry{AccountID: "acc-rent", Debit: dec("10000")},
				ledger.Entry{AccountID: "acc-bank", Credit: dec("10000")},
			),
		}

		statement := categorizer.Categorize(transactions, cashFlowAccounts(), cashFlowPeriod)
		assert.True(t, statement.NetCashFlow.IsZero())
		assert.Len(t, statement.Operating.Lines, 1) // subtotal only
	})

	t.Run("Drafts Excluded", func(t *testing.T) {
		txn := posted("txn-1", ledger.TransactionTypeCustomerPayment, "2024-06-01",
			ledger.Entry{AccountID: "acc-bank", Debit: dec("50000")},
			ledger.Entry{AccountID: "acc-ar", Credit: dec("50000")},
		)
		txn.Status = ledger.StatusDraft

		statement := categorizer.Categorize([]ledger.Transaction{txn}, cashFlowAccounts(), cashFlowPeriod)
		assert.True(t, statement.NetCashFlow.IsZero())
	})

	t.Run("Out Of Period Excluded", func(t *testing.T) {
		transactions := []ledger.Transaction{
			posted("txn-1", ledger.TransactionTypeCustomerPayment, "2024-03-31",
				ledger.Entry{AccountID: "acc-bank", Debit: dec("50000")},
				ledger.Entry{AccountID: "acc-ar", Credit: dec("50000")},
			),
			posted("txn-2", ledger.TransactionTypeCustomerPayment, "2025-04-01",
				ledger.Entry{AccountID: "acc-bank", Debit: dec("25000")},
				ledger.Entry{AccountID: "acc-ar", Credit: dec("25000")},
			),
		}

		statement := categorizer.Categorize(transactions, cashFlowAccounts(), cashFlowPeriod)
		assert.True(t, statement.NetCashFlow.IsZero())
	})

	t.Run("No Cash Leg Excluded", func(t *testing.T) {
		// Rent accrued against the payable ledger touches no cash account.
		transactions := []ledger.Transaction{
			posted("txn-1", ledger.TransactionTypeJournalEntry, "2024-06-01",
				ledger.Entry{AccountID: "acc-rent", Debit: dec("10000")},
				ledger.Entry{AccountID: "acc-ap", Credit: dec("10000")},
			),
		}

		statement := categorizer.Categorize(transactions, cashFlowAccounts(), cashFlowPeriod)
		assert.True(t, statement.NetCashFlow.IsZero())
	})
}

func TestCashFlowCategorizer_JournalEntries(t *testing.T) {
	categorizer := NewCashFlowCategorizer()

	t.Run("Asset Purchase Is Investing", func(t *testing.T) {
		transactions := []ledger.Transaction{
			posted("txn-1", ledger.TransactionTypeJournalEntry, "2024-07-01",
				ledger.Entry{AccountID: "acc-equip", Debit: dec("80000")},
				ledger.Entry{AccountID: "acc-bank", Credit: dec("80000")},
			),
		}

		statement := categorizer.Categorize(transactions, cashFlowAccounts(), cashFlowPeriod)

		assert.True(t, dec("-80000").Equal(statement.Investing.Total))
		assert.Contains(t, statement.Investing.Lines[0].Label, "Asset purchases")
		assert.True(t, statement.Operating.Total.IsZero())
		assert.True(t, statement.Financing.Total.IsZero())
	})

	t.Run("Loan Repayment Lands In Investing", func(t *testing.T) {
		// The cash leg itself is ASSET-typed, so any outflow journal
		// trips the asset check before the liability check is reached.
		transactions := []ledger.Transaction{
			posted("txn-1", ledger.TransactionTypeJournalEntry, "2024-08-01",
				ledger.Entry{AccountID: "acc-loan", Debit: dec("20000")},
				ledger.Entry{AccountID: "acc-bank", Credit: dec("20000")},
			),
		}

		statement := categorizer.Categorize(transactions, cashFlowAccounts(), cashFlowPeriod)

		assert.True(t, dec("-20000").Equal(statement.Investing.Total))
		assert.True(t, statement.Financing.Total.IsZero())
	})

	t.Run("Loan Proceeds Are Financing", func(t *testing.T) {
		transactions := []ledger.Transaction{
			posted("txn-1", ledger.TransactionTypeJournalEntry, "2024-09-01",
				ledger.Entry{AccountID: "acc-bank", Debit: dec("500000")},
				ledger.Entry{AccountID: "acc-loan", Credit: dec("500000")},
			),
		}

		statement := categorizer.Categorize(transactions, cashFlowAccounts(), cashFlowPeriod)

		assert.True(t, dec("500000").Equal(statement.Financing.Total))
		assert.Contains(t, statement.Financing.Lines[0].Label, "Loan proceeds")
		assert.True(t, statement.Investing.Total.IsZero())
	})

	t.Run("Cash Receipt Without Liability Is Operating", func(t *testing.T) {
		transactions := []ledger.Transaction{
			posted("txn-1", ledger.TransactionTypeJournalEntry, "2024-10-01",
				ledger.Entry{AccountID: "acc-bank", Debit: dec("1000")},
				ledger.Entry{AccountID: "acc-sales", Credit: dec("1000")},
			),
		}

		statement := categorizer.Categorize(transactions, cashFlowAccounts(), cashFlowPeriod)

		assert.True(t, dec("1000").Equal(statement.Operating.Total))
		assert.Contains(t, statement.Operating.Lines[0].Label, "Other operating activities")
	})
}

func TestCashFlowCategorizer_UnknownTypeIsOperating(t *testing.T) {
	categorizer := NewCashFlowCategorizer()

	transactions := []ledger.Transaction{
		posted("txn-1", ledger.TransactionType("BANK_TRANSFER"), "2024-06-01",
			ledger.Entry{AccountID: "acc-bank", Debit: dec("2500")},
			ledger.Entry{AccountID: "acc-petty", Credit: dec("2500")},
		),
	}

	statement := categorizer.Categorize(transactions, cashFlowAccounts(), cashFlowPeriod)

	// Both legs are cash, so the movements cancel but the line appears.
	assert.True(t, statement.Operating.Total.IsZero())
	assert.Contains(t, statement.Operating.Lines[0].Label, "Other operating activities (1)")
}

func TestCashFlowCategorizer_AggregatesAndCounts(t *testing.T) {
	categorizer := NewCashFlowCategorizer()

	transactions := []ledger.Transaction{
		posted("txn-1", ledger.TransactionTypeCustomerPayment, "2024-06-01",
			ledger.Entry{AccountID: "acc-bank", Debit: dec("50000")},
			ledger.Entry{AccountID: "acc-ar", Credit: dec("50000")},
		),
		posted("txn-2", ledger.TransactionTypeCustomerPayment, "2024-07-01",
			ledger.Entry{AccountID: "acc-bank", Debit: dec("25000")},
			ledger.Entry{AccountID: "acc-ar", Credit: dec("25000")},
		),
		posted("txn-3", ledger.TransactionTypeVendorPayment, "2024-07-15",
			ledger.Entry{AccountID: "acc-ap", Debit: dec("30000")},
			ledger.Entry{AccountID: "acc-bank", Credit: dec("30000")},
		),
	}

	statement := categorizer.Categorize(transactions, cashFlowAccounts(), cashFlowPeriod)

	require.Len(t, statement.Operating.Lines, 3)
	assert.Equal(t, "Cash received from customers (2)", statement.Operating.Lines[0].Label)
	assert.True(t, dec("75000").Equal(statement.Operating.Lines[0].Amount))
	assert.Equal(t, "Cash paid to vendors (1)", statement.Operating.Lines[1].Label)
	assert.True(t, dec("45000").Equal(statement.Operating.Total))
	assert.True(t, dec("45000").Equal(statement.NetCashFlow))
	assert.True(t, dec("150000").Equal(statement.ClosingCash))
}

func TestCashFlowCategorizer_StatementShape(t *testing.T) {
	categorizer := NewCashFlowCategorizer()

	statement := categorizer.Categorize(nil, cashFlowAccounts(), cashFlowPeriod)

	assert.NotEmpty(t, statement.ReportID)
	assert.Equal(t, "2024-04-01", statement.StartDate)
	assert.Equal(t, "2025-03-31", statement.EndDate)
	assert.False(t, statement.GeneratedAt.IsZero())

	// Every section closes with its subtotal line even when empty.
	require.Len(t, statement.Operating.Lines, 1)
	assert.Equal(t, "Net cash from operating activities", statement.Operating.Lines[0].Label)
	require.Len(t, statement.Investing.Lines, 1)
	assert.Equal(t, "Net cash from investing activities", statement.Investing.Lines[0].Label)
	require.Len(t, statement.Financing.Lines, 1)
	assert.Equal(t, "Net cash from financing activities", statement.Financing.Lines[0].Label)
}

func TestCashFlowCategorizer_OpeningCashIgnoresPeriodStart(t *testing.T) {
	categorizer := NewCashFlowCategorizer()

	// The opening figure is the static opening balance of the cash
	// accounts; it does not roll forward for later periods.
	early := categorizer.Categorize(nil, cashFlowAccounts(), ledger.DateRange{StartDate: "2024-04-01", EndDate: "2024-06-30"})
	late := categorizer.Categorize(nil, cashFlowAccounts(), ledger.DateRange{StartDate: "2026-04-01", EndDate: "2026-06-30"})

	assert.True(t, early.OpeningCash.Equal(late.OpeningCash))
	assert.True(t, dec("105000").Equal(late.OpeningCash))
}
