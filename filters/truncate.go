package filters

import "github.com/Beachwood619/ledger/journal"

// Truncate keeps only the first head and last tail entries of the
// stream. The decision unit is the entry: all transactions of a kept
// entry pass, all of a dropped entry are dropped. Entries covered by
// both windows pass once. Truncation affects display only; calculation
// stages attached upstream still see the full stream.
type Truncate struct {
	next Handler
	head int
	tail int

	buf   []*journal.Transaction
	order []*journal.Entry
	seen  map[*journal.Entry]struct{}
	flushOnce
}

// NewTruncate creates a truncating stage around next. A zero head or
// tail disables that window.
func NewTruncate(next Handler, head, tail int) *Truncate {
	return &Truncate{
		next: next,
		head: head,
		tail: tail,
		seen: make(map[*journal.Entry]struct{}),
	}
}

// Handle buffers the transaction; nothing is forwarded until Flush,
// since the tail window is unknowable before end of stream.
func (t *Truncate) Handle(tx *journal.Transaction) error {
	if _, ok := t.seen[tx.Entry]; !ok {
		t.seen[tx.Entry] = struct{}{}
		t.order = append(t.order, tx.Entry)
	}

	t.buf = append(t.buf, tx)

	return nil
}

// Flush forwards the transactions of kept entries in arrival order, then
// flushes downstream.
func (t *Truncate) Flush() error {
	if err := t.once(); err != nil {
		return err
	}

	total := len(t.order)
	kept := make(map[*journal.Entry]struct{}, total)

	for i, entry := range t.order {
		if t.head > 0 && i < t.head {
			kept[entry] = struct{}{}
		}

		if t.tail > 0 && i >= total-t.tail {
			kept[entry] = struct{}{}
		}
	}

	for _, tx := range t.buf {
		if _, ok := kept[tx.Entry]; !ok {
			continue
		}

		if err := t.next.Handle(tx); err != nil {
			return err
		}
	}

	return t.next.Flush()
}
