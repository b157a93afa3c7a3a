package fatal

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/isabella232/v8ppc/base/backtrace"
	"github.com/isabella232/v8ppc/base/log"
)

// defaultSyncTimeout bounds the best-effort log flush before aborting.
const defaultSyncTimeout = 100 * time.Millisecond

// Config contains the reporter construction inputs. Zero-value fields select
// defaults: stderr output, no structured logger, PanicAborter.
type Config struct {
	// Output receives the abort banner (and the backtrace when enabled).
	Output io.Writer

	// Logger additionally receives the report as a structured error event.
	Logger log.Logger

	// Aborter terminates execution after the report is written.
	Aborter Aborter

	// DumpBacktrace writes the goroutine stack to Output before aborting.
	DumpBacktrace bool

	// SyncTimeout bounds the logger flush before the abort.
	SyncTimeout time.Duration
}

// Reporter formats fatal reports and transfers control to its Aborter.
type Reporter struct {
	out           io.Writer
	logger        log.Logger
	aborter       Aborter
	dumpBacktrace bool
	syncTimeout   time.Duration
}

// NewReporter creates a Reporter from cfg.
func NewReporter(cfg Config) *Reporter {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	aborter := cfg.Aborter
	if aborter == nil {
		aborter = PanicAborter{}
	}

	syncTimeout := cfg.SyncTimeout
	if syncTimeout <= 0 {
		syncTimeout = defaultSyncTimeout
	}

	return &Reporter{
		out:           out,
		logger:        cfg.Logger,
		aborter:       aborter,
		dumpBacktrace: cfg.DumpBacktrace,
		syncTimeout:   syncTimeout,
	}
}

// Fatalf writes a formatted fatal report and aborts. It never returns.
//
// file may be empty and line zero: sites that strip source attribution in
// production report this way, and the banner degrades to a location-free
// form. The message itself is rendered exactly once.
func (r *Reporter) Fatalf(file string, line int, format string, args ...any) {
	message := fmt.Sprintf(format, args...)

	r.writeBanner(file, line, message)
	r.logReport(file, line, message)
	recordFatal(context.Background())

	if r.dumpBacktrace {
		backtrace.DumpTo(r.out)
	}

	r.aborter.Abort(file, line, format, args...)

	// A conforming Aborter never returns; keep the contract even if a
	// broken one does.
	panic(&Error{File: file, Line: line, Message: message})
}

// writeBanner renders the abort banner:
//
//	#
//	# Fatal error in <file>, line <line>
//	# <message>
//	#
//
// surrounded by blank lines. Message lines beyond the first supply their own
// "#" continuation markers.
func (r *Reporter) writeBanner(file string, line int, message string) {
	if file == "" {
		fmt.Fprintf(r.out, "\n\n#\n# Fatal error\n# %s\n#\n\n", message)
		return
	}

	fmt.Fprintf(r.out, "\n\n#\n# Fatal error in %s, line %d\n# %s\n#\n\n", file, line, message)
}

// logReport emits the structured event and flushes the logger. Flushing is
// bounded by the sync timeout so a stuck sink cannot stall the abort.
func (r *Reporter) logReport(file string, line int, message string) {
	if r.logger == nil {
		return
	}

	fields := []log.Field{log.String("message", message)}
	if file != "" {
		fields = append(fields, log.String("file", file), log.Int("line", line))
	}

	r.logger.Log(context.Background(), log.LevelError, "fatal error", fields...)

	ctx, cancel := context.WithTimeout(context.Background(), r.syncTimeout)
	defer cancel()

	_ = r.logger.Sync(ctx)
}

// ---------------------------------------------------------------------------
// Package default reporter
// ---------------------------------------------------------------------------

var (
	defaultReporter   *Reporter
	defaultReporterMu sync.RWMutex
)

// baseline serves fatal reports until SetDefault installs a configured
// reporter. It writes to stderr and panics with a *Error.
var baseline = NewReporter(Config{})

// SetDefault installs the reporter used by package-level checks.
//
// This should be called once during program startup. Passing nil restores the
// baseline stderr reporter.
func SetDefault(reporter *Reporter) {
	defaultReporterMu.Lock()
	defer defaultReporterMu.Unlock()

	defaultReporter = reporter
}

// Default returns the current default reporter. It never returns nil.
func Default() *Reporter {
	defaultReporterMu.RLock()
	defer defaultReporterMu.RUnlock()

	if defaultReporter == nil {
		return baseline
	}

	return defaultReporter
}

// ResetDefault restores the baseline reporter (useful for tests).
func ResetDefault() {
	defaultReporterMu.Lock()
	defer defaultReporterMu.Unlock()

	defaultReporter = nil
}
