package reports

import (
	"context"

	"go.uber.org/zap"

	"github.com/rupeebooks/backend/internal/domain/ledger"
)

// Service generates financial reports from the ledger store. Reports are
// computed on demand and never persisted.
type Service struct {
	store        ledger.Store
	classifier   *ledger.Classifier
	cashFlow     *CashFlowCategorizer
	balanceSheet *BalanceSheetBuilder
	logger       *zap.Logger
}

// NewService creates a report service over the given store.
func NewService(store ledger.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	classifier := ledger.NewClassifier()
	return &Service{
		store:        store,
		classifier:   classifier,
		cashFlow:     NewCashFlowCategorizer(),
		balanceSheet: NewBalanceSheetBuilder(classifier),
		logger:       logger,
	}
}

// GenerateBalanceSheet computes the statement of position for a book as of
// the given date. Transactions dated after asOfDate do not contribute.
func (s *Service) GenerateBalanceSheet(ctx context.Context, bookID, asOfDate string) (*BalanceSheetReport, error) {
	accounts, err := s.store.ListAccounts(ctx, bookID)
	if err != nil {
		return nil, &ReportGenerationError{Report: "balance sheet", Err: err}
	}

	transactions, err := s.store.ListPostedTransactions(ctx, bookID, ledger.DateRange{EndDate: asOfDate})
	if err != nil {
		return nil, &ReportGenerationError{Report: "balance sheet", Err: err}
	}

	balances := AggregateBalances(accounts, transactions)
	report := s.balanceSheet.Build(balances, asOfDate)

	s.logger.Info("generated balance sheet",
		zap.String("bookId", bookID),
		zap.String("asOfDate", asOfDate),
		zap.Bool("balanced", report.Balanced))
	return report, nil
}

// GenerateCashFlow computes the cash flow statement for a book over the
// given period.
func (s *Service) GenerateCashFlow(ctx context.Context, bookID string, period ledger.DateRange) (*CashFlowStatement, error) {
	accounts, err := s.store.ListAccounts(ctx, bookID)
	if err != nil {
		return nil, &ReportGenerationError{Report: "cash flow statement", Err: err}
	}

	transactions, err := s.store.ListPostedTransactions(ctx, bookID, period)
	if err != nil {
		return nil, &ReportGenerationError{Report: "cash flow statement", Err: err}
	}

	statement := s.cashFlow.Categorize(transactions, accounts, period)

	s.logger.Info("generated cash flow statement",
		zap.String("bookId", bookID),
		zap.String("startDate", period.StartDate),
		zap.String("endDate", period.EndDate))
	return statement, nil
}

// ListChartOfAccounts returns every account of the book paired with its
// balance sheet classification. Store errors propagate unmodified.
func (s *Service) ListChartOfAccounts(ctx context.Context, bookID string) ([]ChartEntry, error) {
	accounts, err := s.store.ListAccounts(ctx, bookID)
	if err != nil {
		return nil, err
	}

	entries := make([]ChartEntry, 0, len(accounts))
	for _, account := range accounts {
		entries = append(entries, ChartEntry{
			Account:        account,
			Classification: s.classifier.Classify(account),
		})
	}
	return entries, nil
}

// AggregateBalances folds opening balances and posted entries into one
// debit/credit balance per leaf account, preserving chart order. Group
// accounts aggregate nothing themselves and are skipped; entries on
// account IDs missing from the chart are ignored.
func AggregateBalances(accounts []ledger.Account, transactions []ledger.Transaction) []ledger.AccountBalance {
	balances := make([]ledger.AccountBalance, 0, len(accounts))
	index := make(map[string]int, len(accounts))

	for _, account := range accounts {
		if account.IsGroup {
			continue
		}
		balance := ledger.AccountBalance{Account: account}
		// Opening balances sit on the account's natural side. Negative
		// openings stay on that side rather than flipping.
		switch account.AccountType {
		case ledger.AccountTypeAsset, ledger.AccountTypeExpense:
			balance.Debit = balance.Debit.Add(account.OpeningBalance)
		default:
			balance.Credit = balance.Credit.Add(account.OpeningBalance)
		}
		index[account.AccountID] = len(balances)
		balances = append(balances, balance)
	}

	for _, txn := range transactions {
		if txn.Status != ledger.StatusPosted {
			continue
		}
		for _, entry := range txn.Entries {
			i, ok := index[entry.AccountID]
			if !ok {
				continue
			}
			balances[i].Debit = balances[i].Debit.Add(entry.Debit)
			balances[i].Credit = balances[i].Credit.Add(entry.Credit)
		}
	}

	return balances
}
