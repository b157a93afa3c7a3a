// Package metrics provides a thread-safe factory for OpenTelemetry counter
// instruments with lazy initialization.
//
// The check and fatal packages use it to count diagnostic failures; the
// factory deliberately exposes only the instruments the failure path records.
package metrics
