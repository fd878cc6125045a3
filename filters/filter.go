package filters

import (
	"fmt"

	"github.com/Beachwood619/ledger/expr"
	"github.com/Beachwood619/ledger/journal"
)

// KeepMode selects which side of a predicate a Filter forwards.
type KeepMode int

const (
	// KeepMatching forwards transactions the predicate matches.
	KeepMatching KeepMode = iota
	// KeepNonMatching forwards transactions the predicate rejects.
	KeepNonMatching
)

// Filter forwards only transactions on the configured side of a
// predicate. Everything else is dropped silently.
type Filter struct {
	next Handler
	pred expr.Predicate
	keep KeepMode
	flushOnce
}

// NewFilter creates a filtering stage around next.
func NewFilter(next Handler, pred expr.Predicate, keep KeepMode) *Filter {
	return &Filter{next: next, pred: pred, keep: keep}
}

// Handle forwards the transaction iff it is on the kept side of the
// predicate. Predicate errors abort the report run.
func (f *Filter) Handle(tx *journal.Transaction) error {
	matched, err := f.pred.Match(tx)
	if err != nil {
		return fmt.Errorf("filter predicate: %w", err)
	}

	if f.keep == KeepNonMatching {
		matched = !matched
	}

	if !matched {
		return nil
	}

	return f.next.Handle(tx)
}

// Flush propagates the flush; the filter holds no state.
func (f *Filter) Flush() error {
	if err := f.once(); err != nil {
		return err
	}

	return f.next.Flush()
}
