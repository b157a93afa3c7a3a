// Package constant centralizes the telemetry identifiers shared by the
// diagnostic packages: metric names, label keys, and the label length bound.
// It carries no runtime behavior beyond SanitizeMetricLabel.
package constant
