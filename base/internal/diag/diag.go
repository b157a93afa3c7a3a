// Package diag is the shared engine behind the check, assert, and ppcport
// packages: it evaluates failure sites, renders the diagnostic message for
// each operand kind, records failure metrics, and funnels the report into a
// fatal.Reporter.
//
// The success path does no work beyond the comparison itself: no allocation,
// no caller lookup, no formatting. Everything else happens on the failure
// branch, which does not return.
package diag

import (
	"context"
	"runtime"

	"github.com/isabella232/v8ppc/base/buildcfg"
	"github.com/isabella232/v8ppc/base/fatal"
)

// Failure message formats. Multi-line forms embed "#   " continuation
// markers so they align under the reporter's banner.
const (
	checkFailedFormat = "CHECK(%s) failed"
	eqFailedFormat    = "CHECK_EQ(%s, %s) failed\n#   Expected: %s\n#   Found: %s"
	neFailedFormat    = "CHECK_NE(%s, %s) failed\n#   Value: %s"
)

// Check form names, used as metric labels.
const (
	checkName         = "CHECK"
	checkEqName       = "CHECK_EQ"
	checkNeName       = "CHECK_NE"
	fatalName         = "FATAL"
	unreachableName   = "UNREACHABLE"
	unimplementedName = "UNIMPLEMENTED"
)

// Engine evaluates checks against a fixed configuration and routes failures
// to a reporter. A nil reporter means the fatal package default, resolved at
// failure time so reporter swaps take effect.
type Engine struct {
	cfg      buildcfg.Config
	reporter *fatal.Reporter
}

// NewEngine creates an engine for cfg. reporter may be nil.
func NewEngine(cfg buildcfg.Config, reporter *fatal.Reporter) *Engine {
	return &Engine{cfg: cfg, reporter: reporter}
}

// std serves the package-level functions of check, assert, and ppcport.
var std = NewEngine(buildcfg.Default(), nil)

// Std returns the engine bound to the compile-time configuration and the
// default reporter.
func Std() *Engine {
	return std
}

// Config returns the engine's configuration.
func (e *Engine) Config() buildcfg.Config {
	return e.cfg
}

// caller resolves the failure site. depth counts the exported wrapper frames
// between the engine operation and the user's call: 0 when the operation was
// invoked directly. Operations must call caller from their own frame, never
// through an extra helper, or the count breaks.
func caller(depth int) (string, int) {
	_, file, line, ok := runtime.Caller(depth + 2)
	if !ok {
		return "", 0
	}

	return file, line
}

// That aborts unless cond holds. src is the source text of the condition.
func (e *Engine) That(depth int, cond bool, src string) {
	if cond {
		return
	}

	e.FailCheck(depth+1, src)
}

// FailCheck reports a failed check whose predicate the caller already
// evaluated. Relational checks use it after testing the ordering themselves.
func (e *Engine) FailCheck(depth int, src string) {
	file, line := caller(depth)
	e.failf(file, line, checkName, kindBool, checkFailedFormat, src)
}

// NotNull aborts when v is nil, including typed-nil pointers boxed in
// interfaces. src is the source text of the value expression.
func (e *Engine) NotNull(depth int, v any, src string) {
	if !IsNil(v) {
		return
	}

	e.failCompare(depth+1, ModeNe, kindPtr, "NULL", src, "", "NULL")
}

// Fatal aborts with msg. The failure site is attributed only in debug
// configurations; release reports carry the message alone.
func (e *Engine) Fatal(depth int, msg string) {
	var (
		file string
		line int
	)

	if e.cfg.Debug {
		file, line = caller(depth)
	}

	e.failf(file, line, fatalName, kindNone, "%s", msg)
}

// Unreachable aborts in debug configurations. In release it is a silent
// fallthrough: execution continues at the call site.
func (e *Engine) Unreachable(depth int) {
	if !e.cfg.Debug {
		return
	}

	file, line := caller(depth)
	e.failf(file, line, unreachableName, kindNone, "unreachable code")
}

// Unimplemented always aborts; the failure site is attributed only in debug
// configurations.
func (e *Engine) Unimplemented(depth int) {
	var (
		file string
		line int
	)

	if e.cfg.Debug {
		file, line = caller(depth)
	}

	e.failf(file, line, unimplementedName, kindNone, "unimplemented code")
}

// failf counts the failure and hands the report to the reporter. It never
// returns: Reporter.Fatalf guarantees termination.
func (e *Engine) failf(file string, line int, check, kind, format string, args ...any) {
	recordFailure(context.Background(), check, kind)
	e.report().Fatalf(file, line, format, args...)
}

func (e *Engine) report() *fatal.Reporter {
	if e.reporter != nil {
		return e.reporter
	}

	return fatal.Default()
}
