package filters

import "github.com/Beachwood619/ledger/journal"

// Invert negates the amount of every transaction it forwards.
type Invert struct {
	next Handler
	flushOnce
}

// NewInvert creates an inverting stage around next.
func NewInvert(next Handler) *Invert {
	return &Invert{next: next}
}

// Handle negates the amount and forwards the transaction.
func (i *Invert) Handle(tx *journal.Transaction) error {
	tx.Amount = tx.Amount.Neg()

	return i.next.Handle(tx)
}

// Flush propagates the flush; the stage holds no state.
func (i *Invert) Flush() error {
	if err := i.once(); err != nil {
		return err
	}

	return i.next.Flush()
}
