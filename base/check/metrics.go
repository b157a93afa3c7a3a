package check

import (
	"github.com/isabella232/v8ppc/base/internal/diag"
	"github.com/isabella232/v8ppc/base/metrics"
)

// InitCheckMetrics installs a counter for failed checks built from factory.
// Call it once during startup after telemetry is initialized; the first
// non-nil factory wins. Until then failures are not counted. Failures abort
// regardless; the counter only becomes visible on collection when the
// process survives the abort, as it does under a recovering reporter.
func InitCheckMetrics(factory *metrics.MetricsFactory) {
	diag.InitMetrics(factory)
}

// CheckMetrics returns the installed metrics factory, or nil before
// InitCheckMetrics.
func CheckMetrics() *metrics.MetricsFactory {
	return diag.GetMetrics().Factory()
}

// ResetCheckMetrics removes the installed counter (useful for tests).
func ResetCheckMetrics() {
	diag.ResetMetrics()
}
