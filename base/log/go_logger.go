package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"strings"
)

// logControlCharReplacer escapes control characters that can be used for log injection (CWE-117).
// Newlines, carriage returns, and tabs in log messages can forge fake log entries,
// mislead incident response, or inject false audit trail entries.
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// sanitizeLogString escapes control characters in a single string value.
func sanitizeLogString(s string) string {
	return logControlCharReplacer.Replace(s)
}

// GoLogger is the Go built-in (log) implementation of Logger. It renders
// events as single text lines:
//
//	[error] message [group.key=value, ...]
//
// All string values are sanitized to prevent log injection (CWE-117).
type GoLogger struct {
	level  Level
	out    *stdlog.Logger
	prefix string
	fields []Field
}

// Compile-time assertion: *GoLogger implements Logger.
var _ Logger = (*GoLogger)(nil)

// NewGoLogger creates a stdlib-backed logger writing to w at the given
// verbosity ceiling.
func NewGoLogger(w io.Writer, level Level) *GoLogger {
	return &GoLogger{
		level: level,
		out:   stdlog.New(w, "", stdlog.LstdFlags),
	}
}

// Log implements Logger.
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	parts := make([]string, 0, 3)
	parts = append(parts, "["+level.String()+"]", sanitizeLogString(msg))

	if rendered := l.renderFields(fields); rendered != "" {
		parts = append(parts, rendered)
	}

	l.out.Print(strings.Join(parts, " "))
}

// With returns a child logger with additional structured fields.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return &GoLogger{}
	}

	combined := make([]Field, 0, len(l.fields)+len(fields))
	combined = append(combined, l.fields...)

	for _, f := range fields {
		combined = append(combined, Field{Key: l.prefix + f.Key, Value: f.Value})
	}

	return &GoLogger{
		level:  l.level,
		out:    l.out,
		prefix: l.prefix,
		fields: combined,
	}
}

// WithGroup returns a child logger that prefixes subsequent field keys with
// the group name.
//
//nolint:ireturn
func (l *GoLogger) WithGroup(name string) Logger {
	if l == nil {
		return &GoLogger{}
	}

	if name == "" {
		return l
	}

	return &GoLogger{
		level:  l.level,
		out:    l.out,
		prefix: l.prefix + name + ".",
		fields: l.fields,
	}
}

// Enabled reports whether the given level passes the verbosity ceiling.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil || l.out == nil {
		return false
	}

	return l.level >= level
}

// Sync is a no-op; the stdlib logger writes unbuffered.
func (l *GoLogger) Sync(_ context.Context) error { return nil }

func (l *GoLogger) renderFields(fields []Field) string {
	total := len(l.fields) + len(fields)
	if total == 0 {
		return ""
	}

	parts := make([]string, 0, total)

	for _, f := range l.fields {
		parts = append(parts, renderField(f.Key, f.Value))
	}

	for _, f := range fields {
		parts = append(parts, renderField(l.prefix+f.Key, f.Value))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func renderField(key string, value any) string {
	if s, ok := value.(string); ok {
		return key + "=" + sanitizeLogString(s)
	}

	return key + "=" + sanitizeLogString(fmt.Sprintf("%v", value))
}
