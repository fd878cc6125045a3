// Package filters implements the report pipeline's processing stages.
//
// Every stage implements Handler: it consumes one transaction at a time,
// forwards zero or more transactions to the single downstream handler it
// owns, and is flushed exactly once at end of stream. Buffering stages
// (truncate, sort, collapse, subtotal and its grouping variants) emit
// their held results on Flush before propagating the flush downstream.
//
// The whole package is single-threaded and push-based: a Handle or Flush
// call completes all downstream forwarding before it returns. Handlers
// are not safe for concurrent use and are never reused across chains.
package filters
