package filters

import (
	"time"

	"github.com/Beachwood619/ledger/journal"
)

// DayOfWeek buckets transactions by weekday and emits one subtotal entry
// per non-empty weekday on Flush, Sunday through Saturday.
type DayOfWeek struct {
	next    Handler
	buckets [7]*accumulator
	flushOnce
}

// NewDayOfWeek creates a day-of-week grouping stage around next.
func NewDayOfWeek(next Handler) *DayOfWeek {
	d := &DayOfWeek{next: next}
	for i := range d.buckets {
		d.buckets[i] = newAccumulator()
	}

	return d
}

// Handle folds the transaction into its weekday bucket.
func (d *DayOfWeek) Handle(tx *journal.Transaction) error {
	d.buckets[tx.Date().Weekday()].add(tx)

	return nil
}

// Flush emits the weekday subtotal entries, then flushes downstream.
func (d *DayOfWeek) Flush() error {
	if err := d.once(); err != nil {
		return err
	}

	for weekday, bucket := range d.buckets {
		if err := bucket.emit(d.next, time.Weekday(weekday).String()); err != nil {
			return err
		}
	}

	return d.next.Flush()
}
