package ledger

import (
	"fmt"

	ulid "github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// defaultBalanceTolerance is the largest absolute debit/credit difference
// a transaction may carry and still post. It matches the tolerance used by
// the accounting equation check.
var defaultBalanceTolerance = decimal.New(1, -2) // 0.01

// Poster guards the double-entry invariant on the DRAFT to POSTED
// transition. It performs pure validation only; persisting the status
// change belongs to the store that owns the transaction.
type Poster struct {
	tolerance decimal.Decimal
}

// NewPoster creates a poster with the standard 0.01 balance tolerance.
func NewPoster() *Poster {
	return &Poster{tolerance: defaultBalanceTolerance}
}

// NewPosterWithTolerance creates a poster with a custom balance tolerance.
func NewPosterWithTolerance(tolerance decimal.Decimal) *Poster {
	return &Poster{tolerance: tolerance}
}

// ValidateForPosting checks that the transaction can transition to POSTED:
// it must have entries and its debits and credits must balance within the
// tolerance. No side effects.
func (p *Poster) ValidateForPosting(txn *Transaction) error {
	if len(txn.Entries) == 0 {
		return ErrEmptyTransaction
	}

	debits := txn.TotalDebits()
	credits := txn.TotalCredits()
	diff := debits.Sub(credits)
	if diff.Abs().GreaterThan(p.tolerance) {
		return &UnbalancedLedgerError{Debits: debits, Credits: credits, Diff: diff}
	}

	return nil
}

// Post validates the transaction and returns a POSTED copy. Only DRAFT
// transactions may post; POSTED and VOID are terminal.
func (p *Poster) Post(txn Transaction) (Transaction, error) {
	if txn.Status != StatusDraft {
		return Transaction{}, fmt.Errorf("cannot post transaction %s with status %s", txn.TransactionID, txn.Status)
	}
	if err := p.ValidateForPosting(&txn); err != nil {
		return Transaction{}, err
	}

	txn.Status = StatusPosted
	return txn, nil
}

// Void returns a VOID copy of a DRAFT transaction. Voided transactions are
// excluded from every report.
func (p *Poster) Void(txn Transaction) (Transaction, error) {
	if txn.Status != StatusDraft {
		return Transaction{}, fmt.Errorf("cannot void transaction %s with status %s", txn.TransactionID, txn.Status)
	}

	txn.Status = StatusVoid
	return txn, nil
}

// Reverse builds the correcting counterpart of a POSTED transaction: a new
// DRAFT journal entry dated on the given day with every debit and credit
// leg swapped. The original transaction is never touched.
func (p *Poster) Reverse(txn Transaction, date string) (Transaction, error) {
	if txn.Status != StatusPosted {
		return Transaction{}, fmt.Errorf("cannot reverse transaction %s with status %s", txn.TransactionID, txn.Status)
	}

	entries := make([]Entry, 0, len(txn.Entries))
	for _, e := range txn.Entries {
		entries = append(entries, Entry{
			AccountID: e.AccountID,
			Debit:     e.Credit,
			Credit:    e.Debit,
		})
	}

	return Transaction{
		TransactionID: ulid.Make().String(),
		Type:          TransactionTypeJournalEntry,
		Status:        StatusDraft,
		Date:          date,
		Description:   fmt.Sprintf("Reversal of %s", txn.TransactionID),
		Entries:       entries,
		TotalAmount:   txn.TotalAmount,
	}, nil
}
