package filters

import (
	"sort"

	"github.com/Beachwood619/ledger/expr"
	"github.com/Beachwood619/ledger/journal"
)

// SortTransactions buffers the whole stream and emits it on Flush,
// ordered by the key ascending. The sort is stable: transactions ranking
// equal keep their arrival order.
type SortTransactions struct {
	next Handler
	key  expr.SortKey
	buf  []*journal.Transaction
	flushOnce
}

// NewSortTransactions creates a transaction-sorting stage around next.
func NewSortTransactions(next Handler, key expr.SortKey) *SortTransactions {
	return &SortTransactions{next: next, key: key}
}

// Handle buffers the transaction.
func (s *SortTransactions) Handle(tx *journal.Transaction) error {
	s.buf = append(s.buf, tx)

	return nil
}

// Flush emits the buffer in sorted order, then flushes downstream.
func (s *SortTransactions) Flush() error {
	if err := s.once(); err != nil {
		return err
	}

	sort.SliceStable(s.buf, func(i, j int) bool {
		return s.key.Compare(s.buf[i], s.buf[j]) < 0
	})

	for _, tx := range s.buf {
		if err := s.next.Handle(tx); err != nil {
			return err
		}
	}

	return s.next.Flush()
}

// SortEntries buffers the stream and emits it on Flush with whole
// entries ordered as units: an entry's transactions stay contiguous and
// in arrival order, and entries rank by the key evaluated on their first
// buffered transaction. The sort is stable.
type SortEntries struct {
	next    Handler
	key     expr.SortKey
	order   []*journal.Entry
	byEntry map[*journal.Entry][]*journal.Transaction
	flushOnce
}

// NewSortEntries creates an entry-sorting stage around next.
func NewSortEntries(next Handler, key expr.SortKey) *SortEntries {
	return &SortEntries{
		next:    next,
		key:     key,
		byEntry: make(map[*journal.Entry][]*journal.Transaction),
	}
}

// Handle buffers the transaction under its entry.
func (s *SortEntries) Handle(tx *journal.Transaction) error {
	if _, ok := s.byEntry[tx.Entry]; !ok {
		s.order = append(s.order, tx.Entry)
	}

	s.byEntry[tx.Entry] = append(s.byEntry[tx.Entry], tx)

	return nil
}

// Flush emits entries in sorted order, then flushes downstream.
func (s *SortEntries) Flush() error {
	if err := s.once(); err != nil {
		return err
	}

	sort.SliceStable(s.order, func(i, j int) bool {
		a := s.byEntry[s.order[i]][0]
		b := s.byEntry[s.order[j]][0]

		return s.key.Compare(a, b) < 0
	})

	for _, entry := range s.order {
		for _, tx := range s.byEntry[entry] {
			if err := s.next.Handle(tx); err != nil {
				return err
			}
		}
	}

	return s.next.Flush()
}
