package fatal_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/isabella232/v8ppc/base/fatal"
	"github.com/isabella232/v8ppc/base/log"
	"github.com/isabella232/v8ppc/base/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// captureFatal runs fn, which must end in a PanicAborter panic, and returns
// the recovered report.
func captureFatal(t *testing.T, fn func()) (ferr *fatal.Error) {
	t.Helper()

	defer func() {
		rec := recover()
		require.NotNil(t, rec, "Fatalf must not return")

		var ok bool

		ferr, ok = rec.(*fatal.Error)
		require.True(t, ok, "panic value must be *fatal.Error, got %T", rec)
	}()

	fn()

	return nil
}

// recordingLogger captures structured events for assertions.
type recordingLogger struct {
	events []recordedEvent
	synced bool
}

type recordedEvent struct {
	level  log.Level
	msg    string
	fields []log.Field
}

func (l *recordingLogger) Log(_ context.Context, level log.Level, msg string, fields ...log.Field) {
	l.events = append(l.events, recordedEvent{level: level, msg: msg, fields: fields})
}

//nolint:ireturn
func (l *recordingLogger) With(_ ...log.Field) log.Logger { return l }

//nolint:ireturn
func (l *recordingLogger) WithGroup(_ string) log.Logger { return l }

func (l *recordingLogger) Enabled(_ log.Level) bool { return true }

func (l *recordingLogger) Sync(_ context.Context) error {
	l.synced = true
	return nil
}

// blockingLogger blocks in Sync until the context is cancelled.
type blockingLogger struct {
	recordingLogger
}

func (l *blockingLogger) Sync(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

// returningAborter violates the Aborter contract by returning.
type returningAborter struct {
	called bool
}

func (a *returningAborter) Abort(_ string, _ int, _ string, _ ...any) {
	a.called = true
}

// ---------------------------------------------------------------------------
// Reporter
// ---------------------------------------------------------------------------

func TestFatalf_BannerWithLocation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	reporter := fatal.NewReporter(fatal.Config{Output: &buf})

	ferr := captureFatal(t, func() {
		reporter.Fatalf("checks.go", 12, "CHECK(%s) failed", "x > 0")
	})

	assert.Equal(t,
		"\n\n#\n# Fatal error in checks.go, line 12\n# CHECK(x > 0) failed\n#\n\n",
		buf.String())

	assert.Equal(t, "checks.go", ferr.File)
	assert.Equal(t, 12, ferr.Line)
	assert.Equal(t, "CHECK(x > 0) failed", ferr.Message)
}

func TestFatalf_BannerWithoutLocation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	reporter := fatal.NewReporter(fatal.Config{Output: &buf})

	ferr := captureFatal(t, func() {
		reporter.Fatalf("", 0, "unimplemented code")
	})

	assert.Equal(t, "\n\n#\n# Fatal error\n# unimplemented code\n#\n\n", buf.String())
	assert.Empty(t, ferr.File)
	assert.Zero(t, ferr.Line)
}

func TestFatalf_MultiLineMessageKeepsContinuationMarkers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	reporter := fatal.NewReporter(fatal.Config{Output: &buf})

	captureFatal(t, func() {
		reporter.Fatalf("checks.go", 7,
			"CHECK_EQ(%s, %s) failed\n#   Expected: %s\n#   Found: %s",
			"a", "b", "1", "2")
	})

	assert.Equal(t,
		"\n\n#\n# Fatal error in checks.go, line 7\n# CHECK_EQ(a, b) failed\n#   Expected: 1\n#   Found: 2\n#\n\n",
		buf.String())
}

func TestFatalf_SentinelUnwrap(t *testing.T) {
	t.Parallel()

	reporter := fatal.NewReporter(fatal.Config{Output: &bytes.Buffer{}})

	ferr := captureFatal(t, func() {
		reporter.Fatalf("f.go", 1, "boom")
	})

	require.ErrorIs(t, ferr, fatal.ErrFatal)
}

func TestFatalf_LogsAndFlushes(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	reporter := fatal.NewReporter(fatal.Config{
		Output: &bytes.Buffer{},
		Logger: logger,
	})

	captureFatal(t, func() {
		reporter.Fatalf("checks.go", 3, "unreachable code")
	})

	require.Len(t, logger.events, 1)
	event := logger.events[0]

	assert.Equal(t, log.LevelError, event.level)
	assert.Equal(t, "fatal error", event.msg)
	assert.Contains(t, event.fields, log.String("message", "unreachable code"))
	assert.Contains(t, event.fields, log.String("file", "checks.go"))
	assert.Contains(t, event.fields, log.Int("line", 3))
	assert.True(t, logger.synced, "reporter must flush the logger before aborting")
}

func TestFatalf_OmitsLocationFieldsWhenUnknown(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	reporter := fatal.NewReporter(fatal.Config{
		Output: &bytes.Buffer{},
		Logger: logger,
	})

	captureFatal(t, func() {
		reporter.Fatalf("", 0, "boom")
	})

	require.Len(t, logger.events, 1)

	for _, field := range logger.events[0].fields {
		assert.NotEqual(t, "file", field.Key)
		assert.NotEqual(t, "line", field.Key)
	}
}

func TestFatalf_SyncTimeoutBoundsStuckLogger(t *testing.T) {
	t.Parallel()

	logger := &blockingLogger{}
	reporter := fatal.NewReporter(fatal.Config{
		Output:      &bytes.Buffer{},
		Logger:      logger,
		SyncTimeout: 10 * time.Millisecond,
	})

	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() { _ = recover() }()

		reporter.Fatalf("f.go", 1, "boom")
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Fatalf hung on a stuck logger sync")
	}
}

func TestFatalf_BackstopsReturningAborter(t *testing.T) {
	t.Parallel()

	aborter := &returningAborter{}
	reporter := fatal.NewReporter(fatal.Config{
		Output:  &bytes.Buffer{},
		Aborter: aborter,
	})

	ferr := captureFatal(t, func() {
		reporter.Fatalf("f.go", 9, "boom")
	})

	assert.True(t, aborter.called)
	assert.Equal(t, "boom", ferr.Message)
}

func TestFatalf_DumpBacktrace(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	reporter := fatal.NewReporter(fatal.Config{
		Output:        &buf,
		DumpBacktrace: true,
	})

	captureFatal(t, func() {
		reporter.Fatalf("f.go", 1, "boom")
	})

	out := buf.String()
	assert.Contains(t, out, "==== Stack trace ===============================")
	assert.Contains(t, out, "goroutine")
}

// ---------------------------------------------------------------------------
// Default reporter singleton
// ---------------------------------------------------------------------------

func TestDefaultReporter_SetAndReset(t *testing.T) {
	t.Cleanup(fatal.ResetDefault)

	baseline := fatal.Default()
	require.NotNil(t, baseline)

	custom := fatal.NewReporter(fatal.Config{Output: &bytes.Buffer{}})
	fatal.SetDefault(custom)
	assert.Same(t, custom, fatal.Default())

	fatal.ResetDefault()
	assert.Same(t, baseline, fatal.Default())
}

// ---------------------------------------------------------------------------
// Metrics
// ---------------------------------------------------------------------------

func TestFatalf_RecordsFatalTotal(t *testing.T) {
	t.Cleanup(fatal.ResetFatalMetrics)

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	factory, err := metrics.NewMetricsFactory(provider.Meter("fatal-test"), log.NewNop())
	require.NoError(t, err)

	fatal.InitFatalMetrics(factory)

	reporter := fatal.NewReporter(fatal.Config{Output: &bytes.Buffer{}})

	captureFatal(t, func() {
		reporter.Fatalf("f.go", 1, "boom")
	})

	var rm metricdata.ResourceMetrics

	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "fatal_total" {
				continue
			}

			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)

			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}

	assert.Equal(t, int64(1), total)
}

// ---------------------------------------------------------------------------
// Error
// ---------------------------------------------------------------------------

func TestError_Format(t *testing.T) {
	t.Parallel()

	withLocation := &fatal.Error{File: "checks.go", Line: 42, Message: "CHECK(ok) failed"}
	assert.Equal(t, "fatal error in checks.go, line 42: CHECK(ok) failed", withLocation.Error())

	withoutLocation := &fatal.Error{Message: "unreachable code"}
	assert.Equal(t, "fatal error: unreachable code", withoutLocation.Error())

	var nilErr *fatal.Error

	assert.Equal(t, "fatal error", nilErr.Error())
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	var err error = &fatal.Error{Message: "boom"}

	assert.True(t, errors.Is(err, fatal.ErrFatal))
	assert.False(t, errors.Is(err, errors.New("other")))
}
