package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		want  string
	}{
		{LevelError, "error"},
		{LevelWarn, "warn"},
		{LevelInfo, "info"},
		{LevelDebug, "debug"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "debug", want: LevelDebug},
		{input: "DEBUG", want: LevelDebug},
		{input: "info", want: LevelInfo},
		{input: "warn", want: LevelWarn},
		{input: "warning", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "fatal", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			require.Error(t, err)
			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(t, Field{Key: "line", Value: int64(42)}, Int64("line", 42))
	assert.Equal(t, Field{Key: "ok", Value: true}, Bool("ok", true))
	assert.Equal(t, Field{Key: "any", Value: 1.5}, Any("any", 1.5))

	err := assert.AnError
	assert.Equal(t, Field{Key: "error", Value: err}, Err(err))
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	// Must be inert and must not panic, including through child loggers.
	logger.Log(context.Background(), LevelError, "dropped")
	logger.With(String("k", "v")).Log(nil, LevelError, "dropped") //nolint:staticcheck
	logger.WithGroup("g").Log(context.Background(), LevelDebug, "dropped")

	assert.False(t, logger.Enabled(LevelError))
	assert.NoError(t, logger.Sync(context.Background()))
}

func TestGoLogger_LevelCeiling(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewGoLogger(&buf, LevelWarn)

	assert.True(t, logger.Enabled(LevelError))
	assert.True(t, logger.Enabled(LevelWarn))
	assert.False(t, logger.Enabled(LevelInfo))
	assert.False(t, logger.Enabled(LevelDebug))

	logger.Log(context.Background(), LevelInfo, "suppressed")
	assert.Empty(t, buf.String())

	logger.Log(context.Background(), LevelError, "emitted")
	assert.Contains(t, buf.String(), "[error] emitted")
}

func TestGoLogger_FieldsAndGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewGoLogger(&buf, LevelDebug).
		With(String("component", "check")).
		WithGroup("site")

	logger.Log(context.Background(), LevelError, "failure",
		String("file", "checks.go"), Int("line", 12))

	out := buf.String()
	assert.Contains(t, out, "component=check")
	assert.Contains(t, out, "site.file=checks.go")
	assert.Contains(t, out, "site.line=12")
}

func TestGoLogger_SanitizesControlCharacters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewGoLogger(&buf, LevelDebug)
	logger.Log(context.Background(), LevelError, "line1\nline2",
		String("v", "a\tb\rc"))

	out := buf.String()
	assert.Contains(t, out, `line1\nline2`)
	assert.Contains(t, out, `a\tb\rc`)
	// One rendered line per event; the literal newline must not survive.
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestGoLogger_NilReceiverIsInert(t *testing.T) {
	t.Parallel()

	var logger *GoLogger

	assert.False(t, logger.Enabled(LevelError))
	assert.NotPanics(t, func() {
		logger.With(String("k", "v")).Log(context.Background(), LevelError, "msg")
	})
}
