package filters

import "github.com/Beachwood619/ledger/journal"

// CommodityAsPayee rewrites each transaction's payee to its commodity
// symbol. Useful for commodity-centric reports where the counterparty is
// noise.
type CommodityAsPayee struct {
	next Handler
	flushOnce
}

// NewCommodityAsPayee creates a commodity-as-payee stage around next.
func NewCommodityAsPayee(next Handler) *CommodityAsPayee {
	return &CommodityAsPayee{next: next}
}

// Handle rewrites the payee and forwards the transaction.
func (c *CommodityAsPayee) Handle(tx *journal.Transaction) error {
	tx.PayeeOverride = tx.Amount.Commodity

	return c.next.Handle(tx)
}

// Flush propagates the flush.
func (c *CommodityAsPayee) Flush() error {
	if err := c.once(); err != nil {
		return err
	}

	return c.next.Flush()
}

// CodeAsPayee rewrites each transaction's payee to its code field. A
// transaction without a code keeps its inherited payee.
type CodeAsPayee struct {
	next Handler
	flushOnce
}

// NewCodeAsPayee creates a code-as-payee stage around next.
func NewCodeAsPayee(next Handler) *CodeAsPayee {
	return &CodeAsPayee{next: next}
}

// Handle rewrites the payee and forwards the transaction.
func (c *CodeAsPayee) Handle(tx *journal.Transaction) error {
	tx.PayeeOverride = tx.Code()

	return c.next.Handle(tx)
}

// Flush propagates the flush.
func (c *CodeAsPayee) Flush() error {
	if err := c.once(); err != nil {
		return err
	}

	return c.next.Flush()
}
