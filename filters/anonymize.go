package filters

import (
	"github.com/google/uuid"

	"github.com/Beachwood619/ledger/journal"
)

// Anonymize overwrites payees and account names with opaque
// placeholders, leaving amounts, dates and commodities untouched.
// Placeholders are derived deterministically (uuid.NewSHA1), so the same
// payee or account maps to the same placeholder and the anonymized
// report stays internally consistent.
type Anonymize struct {
	next Handler
	done map[*journal.Entry]struct{}
	flushOnce
}

// NewAnonymize creates an anonymizing stage around next.
func NewAnonymize(next Handler) *Anonymize {
	return &Anonymize{next: next, done: make(map[*journal.Entry]struct{})}
}

// Handle rewrites the identifying fields in place, then forwards the
// transaction. Entry payees are rewritten once per entry so siblings
// stay consistent.
func (a *Anonymize) Handle(tx *journal.Transaction) error {
	if _, ok := a.done[tx.Entry]; !ok {
		a.done[tx.Entry] = struct{}{}
		tx.Entry.Payee = opaque(tx.Entry.Payee)
	}

	if tx.PayeeOverride != "" {
		tx.PayeeOverride = opaque(tx.PayeeOverride)
	}

	tx.Account = opaque(tx.Account)

	return a.next.Handle(tx)
}

func opaque(s string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(s)).String()
}

// Flush propagates the flush; the stage holds no buffered transactions.
func (a *Anonymize) Flush() error {
	if err := a.once(); err != nil {
		return err
	}

	return a.next.Flush()
}
