// Package zap implements the log.Logger interface on go.uber.org/zap.
//
// When the context carries an active OpenTelemetry span, trace_id and
// span_id fields are appended automatically so logs correlate with
// distributed traces.
package zap
