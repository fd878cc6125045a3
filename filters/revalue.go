package filters

import (
	"fmt"

	"github.com/Beachwood619/ledger/expr"
	"github.com/Beachwood619/ledger/journal"
)

// RevaluedPayee names the synthetic entries the revaluation stage emits.
const RevaluedPayee = "Commodities revalued"

// RevaluedAccount is the account synthetic adjustments are posted to.
const RevaluedAccount = "<Revalued>"

// Revalue inserts synthetic adjustment transactions reflecting the
// change in market value of the commodities held so far, so the running
// total downstream moves only when something actually happened. With
// onlyRevalued set, the original transactions are suppressed and only
// the adjustments pass.
type Revalue struct {
	next         Handler
	val          expr.Valuator
	onlyRevalued bool

	holding   journal.Balance
	lastValue journal.Balance
	flushOnce
}

// NewRevalue creates a revaluation stage around next.
func NewRevalue(next Handler, val expr.Valuator, onlyRevalued bool) *Revalue {
	return &Revalue{
		next:         next,
		val:          val,
		onlyRevalued: onlyRevalued,
		holding:      journal.NewBalance(),
		lastValue:    journal.NewBalance(),
	}
}

// Handle revalues the current holding at the transaction's date, emits
// one adjustment entry when the market value moved, then folds the
// transaction into the holding and forwards it (unless suppressed).
func (r *Revalue) Handle(tx *journal.Transaction) error {
	if len(r.holding) > 0 {
		value, err := r.val.Value(tx.Date(), r.holding)
		if err != nil {
			return fmt.Errorf("revalue holding: %w", err)
		}

		diff := value.Clone()
		diff.Sub(r.lastValue)

		if !diff.IsZero() {
			if err := r.emit(tx, diff); err != nil {
				return err
			}
		}
	}

	r.holding.AddAmount(tx.Amount)

	value, err := r.val.Value(tx.Date(), r.holding)
	if err != nil {
		return fmt.Errorf("revalue holding: %w", err)
	}

	r.lastValue = value

	if r.onlyRevalued {
		return nil
	}

	return r.next.Handle(tx)
}

func (r *Revalue) emit(tx *journal.Transaction, diff journal.Balance) error {
	entry := &journal.Entry{Date: tx.Date(), Payee: RevaluedPayee}

	for _, amount := range diff.Amounts() {
		if amount.IsZero() {
			continue
		}

		entry.AddTransaction(&journal.Transaction{
			Account:  RevaluedAccount,
			Amount:   amount,
			Revalued: true,
		})
	}

	for _, adjustment := range entry.Transactions {
		if err := r.next.Handle(adjustment); err != nil {
			return err
		}
	}

	return nil
}

// Flush propagates the flush. The holding was last valued at the final
// transaction's date, so a closing revaluation there would always be
// zero and none is emitted.
func (r *Revalue) Flush() error {
	if err := r.once(); err != nil {
		return err
	}

	return r.next.Flush()
}
