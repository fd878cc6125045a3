package filters

import (
	"time"

	"github.com/Beachwood619/ledger/journal"
)

// Interval buckets transactions into calendar-period windows and emits
// one subtotal entry per non-empty window on Flush. Windows flush in
// first-seen order, which is only chronological when the input was; the
// chain builder pairs this stage with an upstream date sort so
// downstream consumers get chronological output.
type Interval struct {
	next    Handler
	period  journal.Period
	order   []time.Time
	buckets map[time.Time]*accumulator
	flushOnce
}

// NewInterval creates an interval grouping stage around next.
func NewInterval(next Handler, period journal.Period) *Interval {
	return &Interval{
		next:    next,
		period:  period,
		buckets: make(map[time.Time]*accumulator),
	}
}

// Handle folds the transaction into the window containing its date.
func (i *Interval) Handle(tx *journal.Transaction) error {
	start := i.period.Start(tx.Date())

	bucket, ok := i.buckets[start]
	if !ok {
		bucket = newAccumulator()
		i.buckets[start] = bucket
		i.order = append(i.order, start)
	}

	bucket.add(tx)

	return nil
}

// Flush emits one subtotal entry per window, dated at the window start,
// then flushes downstream.
func (i *Interval) Flush() error {
	if err := i.once(); err != nil {
		return err
	}

	for _, start := range i.order {
		bucket := i.buckets[start]
		if bucket.empty() {
			continue
		}

		entry := bucket.entry("")
		entry.Date = start

		for _, tx := range entry.Transactions {
			if err := i.next.Handle(tx); err != nil {
				return err
			}
		}
	}

	return i.next.Flush()
}
