// Package v8ppc carries the diagnostic foundation of the PowerPC port: the
// invariant checks, assertions, and fatal-error reporting the rest of the
// port is written against.
//
// The surface is split across subpackages under base:
//
//	check      always-on invariant checks (CHECK family)
//	assert     development-only checks, compiled away in release builds
//	ppcport    the port's own check family behind the ppcchecks tag
//	fatal      fatal report formatting and the abort path
//	backtrace  on-demand goroutine stack dumps
//	buildcfg   the compile-time configuration the families dispatch on
//
// A failed check renders the failing expression's source text and operands,
// writes the report through the configured fatal reporter, and aborts. The
// success path does no work beyond the comparison itself.
//
// Typical usage:
//
//	check.That(len(code) > 0, "len(code) > 0")
//	check.Eq("kRegisterSize", int64(kRegisterSize), "size", size)
//	assert.NotNil(frame, "frame")
//
// Supporting subpackages (log, zap, metrics, constants) provide the
// structured logging and telemetry the fatal path reports through.
package v8ppc
