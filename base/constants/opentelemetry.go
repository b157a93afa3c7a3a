package constant

// TelemetrySDKName identifies this library in OTEL telemetry resource attributes.
const TelemetrySDKName = "v8ppc/base"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
// Used by the check and fatal packages for label sanitization.
const MaxMetricLabelLength = 64

// Telemetry metric names.
const (
	// MetricCheckFailedTotal is the counter metric for failed checks.
	MetricCheckFailedTotal = "check_failed_total"
	// MetricFatalTotal is the counter metric for fatal reports.
	MetricFatalTotal = "fatal_total"
)

// Telemetry metric label keys.
const (
	// LabelCheck carries the check form that failed (CHECK, CHECK_EQ, ...).
	LabelCheck = "check"
	// LabelKind carries the operand kind of a failed comparison (int32, bytes, ...).
	LabelKind = "kind"
)

// SanitizeMetricLabel truncates a label value to MaxMetricLabelLength
// to prevent metric cardinality explosion in OTEL backends.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
