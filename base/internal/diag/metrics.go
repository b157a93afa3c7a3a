package diag

import (
	"context"
	"fmt"
	"os"
	"sync"

	constant "github.com/isabella232/v8ppc/base/constants"
	"github.com/isabella232/v8ppc/base/metrics"
)

// checkFailedMetric defines the counter for failed checks.
var checkFailedMetric = metrics.Metric{
	Name:        constant.MetricCheckFailedTotal,
	Unit:        "1",
	Description: "Total number of failed checks",
}

// Metrics counts check failures by form and operand kind. The check package
// exposes the Init/Reset pair publicly; the engine records through the
// singleton so instrumented programs see every failure regardless of which
// dispatch surface raised it.
type Metrics struct {
	factory *metrics.MetricsFactory
}

var (
	metricsInstance *Metrics
	metricsMu       sync.RWMutex
)

// InitMetrics installs the metrics factory. The first non-nil factory wins.
func InitMetrics(factory *metrics.MetricsFactory) {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	if factory == nil {
		return
	}

	if metricsInstance != nil {
		return
	}

	metricsInstance = &Metrics{factory: factory}
}

// GetMetrics returns the singleton, or nil before InitMetrics.
func GetMetrics() *Metrics {
	metricsMu.RLock()
	defer metricsMu.RUnlock()

	return metricsInstance
}

// ResetMetrics clears the singleton (useful for tests).
func ResetMetrics() {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	metricsInstance = nil
}

// Factory returns the installed metrics factory. A nil receiver returns nil.
func (m *Metrics) Factory() *metrics.MetricsFactory {
	if m == nil {
		return nil
	}

	return m.factory
}

// RecordFailure increments check_failed_total labeled with the check form
// and, when present, the operand kind. A nil receiver is a no-op.
func (m *Metrics) RecordFailure(ctx context.Context, check, kind string) {
	if m == nil || m.factory == nil {
		return
	}

	counter, err := m.factory.Counter(checkFailedMetric)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create check metric counter: %v\n", err)
		return
	}

	labels := map[string]string{
		constant.LabelCheck: constant.SanitizeMetricLabel(check),
	}

	if kind != "" {
		labels[constant.LabelKind] = constant.SanitizeMetricLabel(kind)
	}

	if err := counter.WithLabels(labels).AddOne(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to record check metric: %v\n", err)
	}
}

func recordFailure(ctx context.Context, check, kind string) {
	GetMetrics().RecordFailure(ctx, check, kind)
}
