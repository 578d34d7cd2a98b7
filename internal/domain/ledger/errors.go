package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrEmptyTransaction is returned when a transaction without entries is
// submitted for posting.
var ErrEmptyTransaction = errors.New("transaction has no entries")

// UnbalancedLedgerError reports a debit/credit mismatch that blocks the
// DRAFT to POSTED transition. Diff is signed: positive means debits exceed
// credits.
type UnbalancedLedgerError struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
	Diff    decimal.Decimal
}

func (e *UnbalancedLedgerError) Error() string {
	return fmt.Sprintf("transaction entries do not balance: debits %s, credits %s, difference %s",
		e.Debits.StringFixed(2), e.Credits.StringFixed(2), e.Diff.StringFixed(2))
}

// StoreReadError wraps a storage failure encountered while fetching the
// ledger snapshot. The cause stays reachable through errors.Is/As; nothing
// here retries.
type StoreReadError struct {
	Op  string
	Err error
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("store read failed: %s: %v", e.Op, e.Err)
}

func (e *StoreReadError) Unwrap() error {
	return e.Err
}

// NewStoreReadError wraps err with the store operation that failed.
func NewStoreReadError(op string, err error) *StoreReadError {
	return &StoreReadError{Op: op, Err: err}
}
