package filters

import "github.com/Beachwood619/ledger/journal"

// TotalAccount is the account collapsed subtotals are posted to.
const TotalAccount = "<Total>"

// Collapse merges the transactions it receives for one entry into a
// single synthetic transaction per commodity, subtotaled under the
// <Total> account. An entry is known complete when a transaction of the
// next entry arrives, or at flush. Entries that contributed a single
// transaction pass through untouched.
type Collapse struct {
	next Handler
	cur  *journal.Entry
	buf  []*journal.Transaction
	flushOnce
}

// NewCollapse creates a collapsing stage around next.
func NewCollapse(next Handler) *Collapse {
	return &Collapse{next: next}
}

// Handle buffers the transaction, emitting the previous entry's collapse
// first when the entry boundary was crossed.
func (c *Collapse) Handle(tx *journal.Transaction) error {
	if c.cur != nil && tx.Entry != c.cur {
		if err := c.emit(); err != nil {
			return err
		}
	}

	c.cur = tx.Entry
	c.buf = append(c.buf, tx)

	return nil
}

func (c *Collapse) emit() error {
	buf := c.buf
	entry := c.cur
	c.buf = nil
	c.cur = nil

	if len(buf) == 0 {
		return nil
	}

	if len(buf) == 1 {
		return c.next.Handle(buf[0])
	}

	sum := journal.NewBalance()
	for _, tx := range buf {
		sum.AddAmount(tx.Amount)
	}

	collapsed := &journal.Entry{Date: entry.Date, Payee: entry.Payee, Code: entry.Code}

	for _, amount := range sum.Amounts() {
		if amount.IsZero() {
			continue
		}

		collapsed.AddTransaction(&journal.Transaction{Account: TotalAccount, Amount: amount})
	}

	for _, tx := range collapsed.Transactions {
		if err := c.next.Handle(tx); err != nil {
			return err
		}
	}

	return nil
}

// Flush emits the pending entry, then flushes downstream.
func (c *Collapse) Flush() error {
	if err := c.once(); err != nil {
		return err
	}

	if err := c.emit(); err != nil {
		return err
	}

	return c.next.Flush()
}
