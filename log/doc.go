// Package log defines the backend-neutral logging interface the library
// emits through, with typed levels and structured fields.
//
// Adapters (such as the zap package) implement Logger so embedding
// applications can route library logs into their own logging stack.
package log
