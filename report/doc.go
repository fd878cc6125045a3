// Package report assembles transaction-processing chains from a report
// configuration.
//
// Config is an immutable snapshot of named options; BuildChain reads it
// once and wires the active filters stages into a single linear chain
// around a caller-supplied sink. The journal walker then feeds
// transactions into the returned entry point and flushes it exactly once
// at end of stream.
package report
