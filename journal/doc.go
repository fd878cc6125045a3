// Package journal defines the data model the report pipeline operates on.
//
// Core types:
//   - Amount: a quantity of a single commodity.
//   - Balance: a multi-commodity sum used for running totals and subtotals.
//   - Entry: a dated, balanced group of transactions.
//   - Transaction: one line item within an entry.
//   - Period: a calendar window used by interval grouping.
//
// Entries arrive from the journal loader already balanced (per-commodity
// zero sum); the pipeline never re-checks or repairs that invariant.
package journal
