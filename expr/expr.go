package expr

import (
	"time"

	"github.com/Beachwood619/ledger/journal"
)

// Predicate decides whether a transaction participates in a report.
// A non-nil error is fatal to the whole report run; no stage skips the
// offending transaction and retries.
type Predicate interface {
	Match(tx *journal.Transaction) (bool, error)
}

// PredicateFunc adapts a plain function to Predicate.
type PredicateFunc func(tx *journal.Transaction) (bool, error)

// Match implements Predicate.
func (f PredicateFunc) Match(tx *journal.Transaction) (bool, error) { return f(tx) }

// Evaluator computes the reportable amount of a transaction: the value
// the running-total stage accumulates.
type Evaluator interface {
	Amount(tx *journal.Transaction) (journal.Amount, error)
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(tx *journal.Transaction) (journal.Amount, error)

// Amount implements Evaluator.
func (f EvaluatorFunc) Amount(tx *journal.Transaction) (journal.Amount, error) { return f(tx) }

// PostedAmount returns the evaluator reporting each transaction's own
// posted amount, the default running-total expression.
//
//nolint:ireturn
func PostedAmount() Evaluator {
	return EvaluatorFunc(func(tx *journal.Transaction) (journal.Amount, error) {
		return tx.Amount, nil
	})
}

// Valuator prices a multi-commodity holding at a point in time. The
// revaluation stage uses it to detect market-value changes between
// consecutive transactions.
type Valuator interface {
	Value(at time.Time, holding journal.Balance) (journal.Balance, error)
}

// ValuatorFunc adapts a plain function to Valuator.
type ValuatorFunc func(at time.Time, holding journal.Balance) (journal.Balance, error)

// Value implements Valuator.
func (f ValuatorFunc) Value(at time.Time, holding journal.Balance) (journal.Balance, error) {
	return f(at, holding)
}
