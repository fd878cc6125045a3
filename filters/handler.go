package filters

import (
	"errors"

	"github.com/Beachwood619/ledger/journal"
)

// Handler is the unit every report stage implements. Chains are built by
// wrapping handlers around each other; the outermost handler is the
// chain's entry point and the only handle a caller keeps.
type Handler interface {
	// Handle consumes one transaction. Any downstream forwarding
	// happens synchronously before Handle returns. A non-nil error is
	// fatal to the report run.
	Handle(tx *journal.Transaction) error

	// Flush signals end of stream. Buffering stages emit everything
	// they hold, then propagate the flush downstream exactly once.
	// Flushing a handler twice is a usage error.
	Flush() error
}

// ErrAlreadyFlushed reports a second Flush on a handler. It marks a
// programming error in the caller, not a runtime condition.
var ErrAlreadyFlushed = errors.New("filters: handler already flushed")

// flushOnce enforces the single-flush contract. Stages embed it and call
// once at the top of Flush.
type flushOnce struct {
	flushed bool
}

func (f *flushOnce) once() error {
	if f.flushed {
		return ErrAlreadyFlushed
	}

	f.flushed = true

	return nil
}
