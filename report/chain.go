package report

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Beachwood619/ledger/expr"
	"github.com/Beachwood619/ledger/filters"
	"github.com/Beachwood619/ledger/journal"
	"github.com/Beachwood619/ledger/log"
)

const tracerName = "github.com/Beachwood619/ledger/report"

// BuildChain wires the active report stages around sink and returns the
// chain's entry point. Stages are attached innermost first, so the last
// stage attached is the first to see each transaction; data then flows
// through progressively earlier-attached stages toward the sink.
//
// When individual is false the per-transaction stages (truncate through
// interval grouping) are skipped and the chain starts at the
// aggregate-mode stages with the sink as base.
//
// The configuration is read once; the returned chain holds no reference
// to it. A chain processes one stream and is flushed exactly once.
func BuildChain(ctx context.Context, cfg *Config, sink filters.Handler, individual bool, logger log.Logger) (filters.Handler, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "report.BuildChain")
	defer span.End()

	if logger == nil {
		logger = log.NewNop()
	}

	handler := sink

	var attached []string

	attach := func(name string, h filters.Handler) {
		handler = h
		attached = append(attached, name)
		logger.Log(ctx, log.LevelDebug, "attached report stage", log.String("stage", name))
	}

	if individual {
		// Truncation cuts entries from display without affecting
		// calculation, so it sits next to the sink.
		head, err := cfg.Int(OptHead)
		if err != nil {
			return nil, &ConfigError{Option: OptHead, Reason: "not an integer", Err: err}
		}

		tail, err := cfg.Int(OptTail)
		if err != nil {
			return nil, &ConfigError{Option: OptTail, Reason: "not an integer", Err: err}
		}

		if head > 0 || tail > 0 {
			attach("truncate", filters.NewTruncate(handler, head, tail))
		}

		if pred := cfg.Predicate(OptDisplay); pred != nil {
			attach("filter(display)", filters.NewFilter(handler, pred, cfg.KeepMode(OptDisplay)))
		}

		// The running total is always computed in individual mode.
		// Where calc lands relative to the filters decides whether
		// filtered transactions contribute: the display filter sits
		// downstream of calc, the only filter upstream.
		eval := cfg.Evaluator(OptAmount)
		if eval == nil {
			err := &ConfigError{Option: OptAmount, Reason: "required for the running total", Err: ErrMissingAmount}
			span.RecordError(err)

			return nil, err
		}

		attach("calc", filters.NewCalc(handler, eval))

		if pred := cfg.Predicate(OptOnly); pred != nil {
			attach("filter(only)", filters.NewFilter(handler, pred, cfg.KeepMode(OptOnly)))
		}

		if key := cfg.SortKey(OptSort); key != nil {
			if cfg.IsSet(OptSortEntries) {
				attach("sort_entries", filters.NewSortEntries(handler, key))
			} else {
				attach("sort", filters.NewSortTransactions(handler, key))
			}
		}

		if cfg.IsSet(OptRevalued) {
			val := cfg.Valuator(OptTotal)
			if val == nil {
				return nil, &ConfigError{Option: OptTotal, Reason: "revaluation requires a valuator"}
			}

			attach("revalue", filters.NewRevalue(handler, val, cfg.IsSet(OptRevaluedOnly)))
		}

		if cfg.IsSet(OptCollapse) {
			attach("collapse", filters.NewCollapse(handler))
		}

		if cfg.IsSet(OptSubtotal) {
			attach("subtotal", filters.NewSubtotal(handler))
		}

		// Priority table, not branch order: dow wins over by_payee.
		switch {
		case cfg.IsSet(OptDOW):
			attach("dow", filters.NewDayOfWeek(handler))
		case cfg.IsSet(OptByPayee):
			attach("by_payee", filters.NewByPayee(handler))
		}

		if cfg.IsSet(OptPeriod) {
			period, err := journal.ParsePeriod(cfg.Value(OptPeriod))
			if err != nil {
				return nil, &ConfigError{Option: OptPeriod, Reason: "unrecognized period", Err: err}
			}

			attach("interval", filters.NewInterval(handler, period))

			// Interval windows surface in the order their first
			// transaction arrived; sorting the input by date makes
			// that order chronological for downstream consumers.
			attach("sort(date)", filters.NewSortTransactions(handler, expr.ByDate()))
		}
	}

	if cfg.IsSet(OptInvert) {
		attach("invert", filters.NewInvert(handler))
	}

	if cfg.IsSet(OptRelated) {
		attach("related", filters.NewRelated(handler, cfg.IsSet(OptRelatedAll)))
	}

	if cfg.IsSet(OptAnon) {
		attach("anonymize", filters.NewAnonymize(handler))
	}

	if pred := cfg.Predicate(OptLimit); pred != nil {
		attach("filter(limit)", filters.NewFilter(handler, pred, cfg.KeepMode(OptLimit)))
	}

	// Priority table: comm_as_payee wins over code_as_payee.
	switch {
	case cfg.IsSet(OptCommAsPayee):
		attach("comm_as_payee", filters.NewCommodityAsPayee(handler))
	case cfg.IsSet(OptCodeAsPayee):
		attach("code_as_payee", filters.NewCodeAsPayee(handler))
	}

	span.SetAttributes(attribute.StringSlice("report.stages", attached))
	logger.Log(ctx, log.LevelInfo, "report chain built", log.Int("stages", len(attached)))

	return handler, nil
}
