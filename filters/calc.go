package filters

import (
	"fmt"

	"github.com/Beachwood619/ledger/expr"
	"github.com/Beachwood619/ledger/journal"
)

// Calc accumulates the running total and attaches a snapshot of it to
// every transaction it forwards. Its position in the chain is decisive:
// transactions dropped upstream of Calc never reach it and so never
// contribute to the total, while transactions dropped downstream already
// have.
type Calc struct {
	next  Handler
	eval  expr.Evaluator
	total journal.Balance
	flushOnce
}

// NewCalc creates a running-total stage around next.
func NewCalc(next Handler, eval expr.Evaluator) *Calc {
	return &Calc{next: next, eval: eval, total: journal.NewBalance()}
}

// Handle folds the transaction's reportable amount into the total,
// annotates the transaction with a copy, and forwards it.
func (c *Calc) Handle(tx *journal.Transaction) error {
	amount, err := c.eval.Amount(tx)
	if err != nil {
		return fmt.Errorf("calc amount: %w", err)
	}

	c.total.AddAmount(amount)
	tx.Total = c.total.Clone()

	return c.next.Handle(tx)
}

// Flush propagates the flush; the running total is not emitted.
func (c *Calc) Flush() error {
	if err := c.once(); err != nil {
		return err
	}

	return c.next.Flush()
}
