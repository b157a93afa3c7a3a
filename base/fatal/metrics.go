package fatal

import (
	"context"
	"fmt"
	"os"
	"sync"

	constant "github.com/isabella232/v8ppc/base/constants"
	"github.com/isabella232/v8ppc/base/metrics"
)

// fatalMetric defines the counter for fatal reports.
var fatalMetric = metrics.Metric{
	Name:        constant.MetricFatalTotal,
	Unit:        "1",
	Description: "Total number of fatal error reports",
}

// FatalMetrics provides fatal-report metrics using OpenTelemetry.
type FatalMetrics struct {
	factory *metrics.MetricsFactory
}

var (
	fatalMetricsInstance *FatalMetrics
	fatalMetricsMu       sync.RWMutex
)

// InitFatalMetrics initializes fatal metrics with the provided MetricsFactory.
// This should be called once during application startup after telemetry is
// initialized.
func InitFatalMetrics(factory *metrics.MetricsFactory) {
	fatalMetricsMu.Lock()
	defer fatalMetricsMu.Unlock()

	if factory == nil {
		return
	}

	if fatalMetricsInstance != nil {
		return
	}

	fatalMetricsInstance = &FatalMetrics{factory: factory}
}

// GetFatalMetrics returns the singleton FatalMetrics instance.
// Returns nil if InitFatalMetrics has not been called.
func GetFatalMetrics() *FatalMetrics {
	fatalMetricsMu.RLock()
	defer fatalMetricsMu.RUnlock()

	return fatalMetricsInstance
}

// ResetFatalMetrics clears the fatal metrics singleton (useful for tests).
func ResetFatalMetrics() {
	fatalMetricsMu.Lock()
	defer fatalMetricsMu.Unlock()

	fatalMetricsInstance = nil
}

// RecordFatal increments the fatal_total counter.
// If metrics are not initialized, this is a no-op.
func (fm *FatalMetrics) RecordFatal(ctx context.Context) {
	if fm == nil || fm.factory == nil {
		return
	}

	counter, err := fm.factory.Counter(fatalMetric)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create fatal metric counter: %v\n", err)
		return
	}

	if err := counter.AddOne(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to record fatal metric: %v\n", err)
	}
}

func recordFatal(ctx context.Context) {
	GetFatalMetrics().RecordFatal(ctx)
}
