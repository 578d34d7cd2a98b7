package ledger

import "context"

// DateRange bounds a reporting period with inclusive ISO dates
// (YYYY-MM-DD). An empty bound is open.
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Contains reports whether date falls inside the range. ISO dates compare
// lexicographically, so no parsing happens here; an empty date is never in
// range.
func (r DateRange) Contains(date string) bool {
	if date == "" {
		return false
	}
	if r.StartDate != "" && date < r.StartDate {
		return false
	}
	if r.EndDate != "" && date > r.EndDate {
		return false
	}
	return true
}

// Store is the read-only view of the ledger document store consumed by the
// reporting engine. Accounts and transactions are owned and mutated by the
// ledger-management collaborator; implementations must wrap storage
// failures in StoreReadError.
type Store interface {
	// ListAccounts returns the full chart of accounts for a book.
	ListAccounts(ctx context.Context, bookID string) ([]Account, error)

	// ListPostedTransactions returns POSTED transactions dated within the
	// period. DRAFT and VOID transactions are never returned.
	ListPostedTransactions(ctx context.Context, bookID string, period DateRange) ([]Transaction, error)
}
