package journal

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Amount is a quantity of a single commodity.
type Amount struct {
	Commodity string
	Quantity  decimal.Decimal
}

// NewAmount creates an amount of the given commodity.
func NewAmount(quantity decimal.Decimal, commodity string) Amount {
	return Amount{Commodity: commodity, Quantity: quantity}
}

// Neg returns the amount with its quantity negated.
func (a Amount) Neg() Amount {
	return Amount{Commodity: a.Commodity, Quantity: a.Quantity.Neg()}
}

// IsZero reports whether the quantity is zero.
func (a Amount) IsZero() bool {
	return a.Quantity.IsZero()
}

// String returns the amount formatted as "<quantity> <commodity>".
func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.Quantity, a.Commodity)
}

// Balance is a multi-commodity sum keyed by commodity. The zero-valued
// commodities that arise from additions and subtractions are kept, so a
// balance that once held a commodity keeps reporting it at zero.
type Balance map[string]decimal.Decimal

// NewBalance creates an empty balance.
func NewBalance() Balance {
	return make(Balance)
}

// AddAmount folds one amount into the balance.
func (b Balance) AddAmount(a Amount) {
	b[a.Commodity] = b[a.Commodity].Add(a.Quantity)
}

// Add folds every commodity of other into the balance.
func (b Balance) Add(other Balance) {
	for commodity, quantity := range other {
		b[commodity] = b[commodity].Add(quantity)
	}
}

// Sub subtracts every commodity of other from the balance.
func (b Balance) Sub(other Balance) {
	for commodity, quantity := range other {
		b[commodity] = b[commodity].Sub(quantity)
	}
}

// Clone returns an independent copy of the balance.
func (b Balance) Clone() Balance {
	out := make(Balance, len(b))
	for commodity, quantity := range b {
		out[commodity] = quantity
	}

	return out
}

// IsZero reports whether every commodity in the balance sums to zero.
func (b Balance) IsZero() bool {
	for _, quantity := range b {
		if !quantity.IsZero() {
			return false
		}
	}

	return true
}

// Quantity returns the balance of a single commodity (zero when absent).
func (b Balance) Quantity(commodity string) decimal.Decimal {
	return b[commodity]
}

// Equal reports whether both balances carry the same non-zero quantities.
func (b Balance) Equal(other Balance) bool {
	diff := b.Clone()
	diff.Sub(other)

	return diff.IsZero()
}

// Amounts returns the balance as a slice of amounts, ordered by commodity
// so iteration is deterministic.
func (b Balance) Amounts() []Amount {
	out := make([]Amount, 0, len(b))
	for commodity, quantity := range b {
		out = append(out, Amount{Commodity: commodity, Quantity: quantity})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Commodity < out[j].Commodity })

	return out
}
