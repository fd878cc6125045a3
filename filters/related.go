package filters

import "github.com/Beachwood619/ledger/journal"

// Related forwards, for each transaction received, its entry siblings:
// the other side of whatever matched upstream. In all-mode the entry's
// whole transaction set passes as soon as any member arrives, the
// received transaction included. No transaction is forwarded twice.
type Related struct {
	next Handler
	all  bool
	sent map[*journal.Transaction]struct{}
	flushOnce
}

// NewRelated creates a related-transactions stage around next.
func NewRelated(next Handler, all bool) *Related {
	return &Related{next: next, all: all, sent: make(map[*journal.Transaction]struct{})}
}

// Handle forwards the transaction's siblings (or, in all-mode, its whole
// entry), skipping anything already forwarded.
func (r *Related) Handle(tx *journal.Transaction) error {
	for _, sibling := range tx.Entry.Transactions {
		if !r.all && sibling == tx {
			continue
		}

		if err := r.forwardOnce(sibling); err != nil {
			return err
		}
	}

	return nil
}

func (r *Related) forwardOnce(tx *journal.Transaction) error {
	if _, ok := r.sent[tx]; ok {
		return nil
	}

	r.sent[tx] = struct{}{}

	return r.next.Handle(tx)
}

// Flush propagates the flush; forwarding happens inline.
func (r *Related) Flush() error {
	if err := r.once(); err != nil {
		return err
	}

	return r.next.Flush()
}
