package filters

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Beachwood619/ledger/journal"
)

// acctCommodity keys an accumulator bucket.
type acctCommodity struct {
	account   string
	commodity string
}

// accumulator folds transactions into per-(account, commodity) sums and
// replays them as one subtotal entry. It is the aggregation core shared
// by the subtotal, day-of-week, by-payee and interval stages.
type accumulator struct {
	sums  map[acctCommodity]decimal.Decimal
	first time.Time
	last  time.Time
}

func newAccumulator() *accumulator {
	return &accumulator{sums: make(map[acctCommodity]decimal.Decimal)}
}

func (a *accumulator) add(tx *journal.Transaction) {
	key := acctCommodity{account: tx.Account, commodity: tx.Amount.Commodity}
	a.sums[key] = a.sums[key].Add(tx.Amount.Quantity)

	date := tx.Date()
	if a.first.IsZero() || date.Before(a.first) {
		a.first = date
	}

	if date.After(a.last) {
		a.last = date
	}
}

func (a *accumulator) empty() bool {
	return len(a.sums) == 0
}

// entry builds the subtotal entry: date is the earliest contributing
// date, and an empty payee falls back to the "- <last date>" convention.
// Transactions come out ordered by account, then commodity.
func (a *accumulator) entry(payee string) *journal.Entry {
	if payee == "" {
		payee = "- " + a.last.Format("2006/01/02")
	}

	keys := make([]acctCommodity, 0, len(a.sums))
	for key := range a.sums {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].account != keys[j].account {
			return keys[i].account < keys[j].account
		}

		return keys[i].commodity < keys[j].commodity
	})

	entry := &journal.Entry{Date: a.first, Payee: payee}
	for _, key := range keys {
		entry.AddTransaction(&journal.Transaction{
			Account: key.account,
			Amount:  journal.Amount{Commodity: key.commodity, Quantity: a.sums[key]},
		})
	}

	return entry
}

func (a *accumulator) emit(next Handler, payee string) error {
	if a.empty() {
		return nil
	}

	for _, tx := range a.entry(payee).Transactions {
		if err := next.Handle(tx); err != nil {
			return err
		}
	}

	return nil
}

// Subtotal folds the entire stream into a single entry with one
// transaction per distinct (account, commodity) pair, emitted on Flush.
// Per-commodity sums are preserved exactly.
type Subtotal struct {
	next Handler
	acc  *accumulator
	flushOnce
}

// NewSubtotal creates a subtotaling stage around next.
func NewSubtotal(next Handler) *Subtotal {
	return &Subtotal{next: next, acc: newAccumulator()}
}

// Handle folds the transaction into the accumulator.
func (s *Subtotal) Handle(tx *journal.Transaction) error {
	s.acc.add(tx)

	return nil
}

// Flush emits the subtotal entry, then flushes downstream.
func (s *Subtotal) Flush() error {
	if err := s.once(); err != nil {
		return err
	}

	if err := s.acc.emit(s.next, ""); err != nil {
		return err
	}

	return s.next.Flush()
}
