// Package zap provides the production structured logger for diagnostic
// reports.
//
// It adapts go.uber.org/zap to the log.Logger interface the fatal reporter
// consumes, tees every event into the OpenTelemetry log bridge, and maps the
// compile-time diagnostic configuration to a logging profile so debug builds
// come up verbose.
package zap
