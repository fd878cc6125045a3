package report

import (
	"strconv"

	"github.com/Beachwood619/ledger/expr"
	"github.com/Beachwood619/ledger/filters"
)

// Option names recognized by the chain builder.
const (
	OptHead         = "head"
	OptTail         = "tail"
	OptDisplay      = "display"
	OptAmount       = "amount"
	OptOnly         = "only"
	OptSort         = "sort"
	OptSortEntries  = "sort_entries"
	OptRevalued     = "revalued"
	OptRevaluedOnly = "revalued_only"
	OptTotal        = "total"
	OptCollapse     = "collapse"
	OptSubtotal     = "subtotal"
	OptDOW          = "dow"
	OptByPayee      = "by_payee"
	OptPeriod       = "period"
	OptInvert       = "invert"
	OptRelated      = "related"
	OptRelatedAll   = "related_all"
	OptAnon         = "anon"
	OptLimit        = "limit"
	OptCommAsPayee  = "comm_as_payee"
	OptCodeAsPayee  = "code_as_payee"
)

// option is one configured setting: a bare flag, a string value, or a
// compiled expression handed over by the external options parser.
type option struct {
	value     string
	hasValue  bool
	predicate expr.Predicate
	keep      filters.KeepMode
	evaluator expr.Evaluator
	valuator  expr.Valuator
	sortKey   expr.SortKey
}

// Config is an immutable snapshot of report options. The chain builder
// queries it read-only; stages never see it.
type Config struct {
	opts map[string]option
}

// Setting sets a single option on a Config under construction.
type Setting func(*Config)

// NewConfig builds a configuration snapshot from the given settings.
func NewConfig(settings ...Setting) *Config {
	cfg := &Config{opts: make(map[string]option)}
	for _, apply := range settings {
		apply(cfg)
	}

	return cfg
}

// WithFlag sets a boolean option.
func WithFlag(name string) Setting {
	return func(cfg *Config) {
		cfg.opts[name] = option{}
	}
}

// WithValue sets an option carrying a string value.
func WithValue(name, value string) Setting {
	return func(cfg *Config) {
		cfg.opts[name] = option{value: value, hasValue: true}
	}
}

// WithPredicate sets an option carrying a compiled predicate and its
// keep-mode.
func WithPredicate(name string, pred expr.Predicate, keep filters.KeepMode) Setting {
	return func(cfg *Config) {
		cfg.opts[name] = option{predicate: pred, keep: keep}
	}
}

// WithEvaluator sets an option carrying a compiled amount expression.
func WithEvaluator(name string, eval expr.Evaluator) Setting {
	return func(cfg *Config) {
		cfg.opts[name] = option{evaluator: eval}
	}
}

// WithValuator sets an option carrying a compiled valuation expression.
func WithValuator(name string, val expr.Valuator) Setting {
	return func(cfg *Config) {
		cfg.opts[name] = option{valuator: val}
	}
}

// WithSortKey sets an option carrying a compiled sort key.
func WithSortKey(name string, key expr.SortKey) Setting {
	return func(cfg *Config) {
		cfg.opts[name] = option{sortKey: key}
	}
}

// IsSet reports whether the named option was set in any form.
func (c *Config) IsSet(name string) bool {
	_, ok := c.opts[name]

	return ok
}

// Value returns the string value of the named option, empty when the
// option is unset or a bare flag.
func (c *Config) Value(name string) string {
	return c.opts[name].value
}

// Int parses the named option's value as an integer. An unset option
// yields zero.
func (c *Config) Int(name string) (int, error) {
	opt, ok := c.opts[name]
	if !ok || !opt.hasValue {
		return 0, nil
	}

	return strconv.Atoi(opt.value)
}

// Predicate returns the compiled predicate of the named option, nil when
// unset.
//
//nolint:ireturn
func (c *Config) Predicate(name string) expr.Predicate {
	return c.opts[name].predicate
}

// KeepMode returns the keep-mode configured alongside the named
// predicate option.
func (c *Config) KeepMode(name string) filters.KeepMode {
	return c.opts[name].keep
}

// Evaluator returns the compiled amount expression of the named option,
// nil when unset.
//
//nolint:ireturn
func (c *Config) Evaluator(name string) expr.Evaluator {
	return c.opts[name].evaluator
}

// Valuator returns the compiled valuation expression of the named
// option, nil when unset.
//
//nolint:ireturn
func (c *Config) Valuator(name string) expr.Valuator {
	return c.opts[name].valuator
}

// SortKey returns the compiled sort key of the named option, nil when
// unset.
//
//nolint:ireturn
func (c *Config) SortKey(name string) expr.SortKey {
	return c.opts[name].sortKey
}
