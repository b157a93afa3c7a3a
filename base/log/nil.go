package log

import "context"

// NewNop returns a Logger that drops every event. Components that take an
// optional Logger fall back to it so call sites never nil-check.
//
//nolint:ireturn
func NewNop() Logger {
	return nopLogger{}
}

// nopLogger discards everything. The zero-size value type makes every child
// logger the same instance.
type nopLogger struct{}

func (nopLogger) Log(context.Context, Level, string, ...Field) {}

//nolint:ireturn
func (n nopLogger) With(...Field) Logger { return n }

//nolint:ireturn
func (n nopLogger) WithGroup(string) Logger { return n }

func (nopLogger) Enabled(Level) bool { return false }

func (nopLogger) Sync(context.Context) error { return nil }
