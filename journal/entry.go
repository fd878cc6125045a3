package journal

import "time"

// Entry is a dated group of transactions sharing a payee and code. The
// journal loader guarantees the per-commodity amounts of an entry sum to
// zero; Balanced exposes that check but nothing in the pipeline enforces
// it.
type Entry struct {
	Date         time.Time
	Payee        string
	Code         string
	Transactions []*Transaction
}

// AddTransaction appends tx to the entry and wires its back-pointer.
func (e *Entry) AddTransaction(tx *Transaction) {
	tx.Entry = e
	e.Transactions = append(e.Transactions, tx)
}

// Balanced reports whether the entry's amounts sum to zero per commodity.
func (e *Entry) Balanced() bool {
	sum := NewBalance()
	for _, tx := range e.Transactions {
		sum.AddAmount(tx.Amount)
	}

	return sum.IsZero()
}

// Transaction is one line item within an entry: an amount in a commodity
// posted to an account. Date, payee and code are inherited from the
// owning entry unless overridden. Total and Revalued are annotations
// attached by pipeline stages; everything else is immutable once a stage
// has forwarded the transaction.
type Transaction struct {
	Entry   *Entry
	Account string
	Amount  Amount

	// Overrides; the zero value inherits from the owning entry.
	DateOverride  time.Time
	PayeeOverride string
	CodeOverride  string

	// Total is the running total attached by the calc stage.
	Total Balance

	// Revalued marks synthetic valuation-adjustment transactions.
	Revalued bool
}

// Date returns the transaction date, falling back to the entry's.
func (tx *Transaction) Date() time.Time {
	if !tx.DateOverride.IsZero() {
		return tx.DateOverride
	}

	if tx.Entry != nil {
		return tx.Entry.Date
	}

	return time.Time{}
}

// Payee returns the transaction payee, falling back to the entry's.
func (tx *Transaction) Payee() string {
	if tx.PayeeOverride != "" {
		return tx.PayeeOverride
	}

	if tx.Entry != nil {
		return tx.Entry.Payee
	}

	return ""
}

// Code returns the transaction code, falling back to the entry's.
func (tx *Transaction) Code() string {
	if tx.CodeOverride != "" {
		return tx.CodeOverride
	}

	if tx.Entry != nil {
		return tx.Entry.Code
	}

	return ""
}
