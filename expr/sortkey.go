package expr

import "github.com/Beachwood619/ledger/journal"

// SortKey is a total order over transactions. Compare returns a negative
// number when a sorts before b, zero when they rank equally, and a
// positive number when a sorts after b. Sort stages are stable, so equal
// keys keep arrival order.
type SortKey interface {
	Compare(a, b *journal.Transaction) int
}

// SortKeyFunc adapts a plain comparison function to SortKey.
type SortKeyFunc func(a, b *journal.Transaction) int

// Compare implements SortKey.
func (f SortKeyFunc) Compare(a, b *journal.Transaction) int { return f(a, b) }

// ByDate orders transactions chronologically. The interval stage relies
// on it to deliver windows in date order.
//
//nolint:ireturn
func ByDate() SortKey {
	return SortKeyFunc(func(a, b *journal.Transaction) int {
		return a.Date().Compare(b.Date())
	})
}

// ByAmount orders transactions by commodity, then by quantity.
//
//nolint:ireturn
func ByAmount() SortKey {
	return SortKeyFunc(func(a, b *journal.Transaction) int {
		if a.Amount.Commodity != b.Amount.Commodity {
			if a.Amount.Commodity < b.Amount.Commodity {
				return -1
			}

			return 1
		}

		return a.Amount.Quantity.Cmp(b.Amount.Quantity)
	})
}
