package report

import (
	"errors"
	"fmt"
)

// ErrMissingAmount is the sentinel for a chain built without the
// running-total amount evaluator.
var ErrMissingAmount = errors.New("report: amount evaluator is required")

// ConfigError describes a construction-time configuration failure. The
// chain builder returns it before any transaction is processed; no
// partially built chain ever runs.
type ConfigError struct {
	Option string
	Reason string
	Err    error
}

// Error returns the formatted configuration error string.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("report: option %q: %s", e.Option, e.Reason)
}

// Unwrap returns the wrapped cause for errors.Is.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
