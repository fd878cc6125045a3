package filters

import "github.com/Beachwood619/ledger/journal"

// ByPayee buckets transactions by payee and emits one subtotal entry per
// payee on Flush, in first-seen order.
type ByPayee struct {
	next    Handler
	order   []string
	buckets map[string]*accumulator
	flushOnce
}

// NewByPayee creates a by-payee grouping stage around next.
func NewByPayee(next Handler) *ByPayee {
	return &ByPayee{next: next, buckets: make(map[string]*accumulator)}
}

// Handle folds the transaction into its payee bucket.
func (b *ByPayee) Handle(tx *journal.Transaction) error {
	payee := tx.Payee()

	bucket, ok := b.buckets[payee]
	if !ok {
		bucket = newAccumulator()
		b.buckets[payee] = bucket
		b.order = append(b.order, payee)
	}

	bucket.add(tx)

	return nil
}

// Flush emits the payee subtotal entries, then flushes downstream.
func (b *ByPayee) Flush() error {
	if err := b.once(); err != nil {
		return err
	}

	for _, payee := range b.order {
		if err := b.buckets[payee].emit(b.next, payee); err != nil {
			return err
		}
	}

	return b.next.Flush()
}
