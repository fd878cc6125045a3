package filters

import "github.com/Beachwood619/ledger/journal"

// Collector is a terminal handler that records everything it receives.
// It stands in for the report formatter in tests and in callers that
// want the processed stream as a slice.
type Collector struct {
	Transactions []*journal.Transaction
	Flushes      int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Handle records the transaction.
func (c *Collector) Handle(tx *journal.Transaction) error {
	c.Transactions = append(c.Transactions, tx)

	return nil
}

// Flush counts the flush. The count stays visible so tests can verify
// exactly one flush reaches the end of a chain.
func (c *Collector) Flush() error {
	c.Flushes++

	return nil
}
