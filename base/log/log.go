package log

import "context"

// Logger is the structured logging interface consumed by the diagnostic
// reporting packages. Adapters (zap, the stdlib-backed GoLogger) implement it
// so the failure path never depends on a concrete logging backend.
type Logger interface {
	// Log emits a single event at the given level. Implementations must
	// tolerate a nil ctx and must never panic.
	Log(ctx context.Context, level Level, msg string, fields ...Field)

	// With returns a child logger that attaches fields to every event.
	With(fields ...Field) Logger

	// WithGroup returns a child logger that nests subsequent fields under
	// the given namespace.
	WithGroup(name string) Logger

	// Enabled reports whether an event at the given level would be emitted.
	Enabled(level Level) bool

	// Sync flushes buffered events, honoring ctx cancellation. The fatal
	// reporter calls this before aborting so the last report is not lost.
	Sync(ctx context.Context) error
}

// Field is a strongly-typed key/value attribute attached to a log event.
type Field struct {
	Key   string
	Value any
}

// Any creates a field with an arbitrary value.
//
// Prefer the typed constructors where possible; arbitrary values are rendered
// with reflection by most backends.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates a 64-bit integer field.
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates the conventional `error` field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
