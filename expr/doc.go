// Package expr defines the contracts the report pipeline consumes from
// the expression-evaluation engine.
//
// The engine itself lives outside this module; stages see it only
// through these narrow interfaces:
//   - Predicate decides whether a transaction passes a filter.
//   - Evaluator computes the value the running total accumulates.
//   - Valuator prices a holding at a point in time.
//   - SortKey is a total order over transactions.
//
// Func adapters are provided for each, plus the ByDate and ByAmount keys
// used by common reports.
package expr
