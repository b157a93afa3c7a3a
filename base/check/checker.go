package check

import (
	"github.com/isabella232/v8ppc/base/buildcfg"
	"github.com/isabella232/v8ppc/base/fatal"
	"github.com/isabella232/v8ppc/base/internal/diag"
)

// Checker evaluates the full check surface against an explicit
// configuration instead of the compile-time one. The package-level functions
// stay zero-cost under build-tag dispatch; a Checker trades that for the
// ability to exercise every configuration combination in a single binary,
// which is how the mode-dependent behavior is tested.
type Checker struct {
	cfg    buildcfg.Config
	engine *diag.Engine
}

// New creates a Checker for cfg, reporting through the fatal package
// default reporter.
func New(cfg buildcfg.Config) *Checker {
	return &Checker{
		cfg:    cfg,
		engine: diag.NewEngine(cfg, nil),
	}
}

// WithReporter returns a copy of the Checker bound to reporter. A nil
// reporter restores default-reporter resolution.
func (c *Checker) WithReporter(reporter *fatal.Reporter) *Checker {
	return &Checker{
		cfg:    c.cfg,
		engine: diag.NewEngine(c.cfg, reporter),
	}
}

// Config returns the configuration the Checker evaluates against.
func (c *Checker) Config() buildcfg.Config {
	return c.cfg
}

// ---------------------------------------------------------------------------
// Unconditional checks
// ---------------------------------------------------------------------------

// That aborts unless cond holds.
func (c *Checker) That(cond bool, src string) {
	c.engine.That(1, cond, src)
}

// EqInt aborts unless the integers are equal.
func (c *Checker) EqInt(expectedSrc string, expected int, valueSrc string, value int) {
	c.engine.CompareInt(1, diag.ModeEq, expectedSrc, expected, valueSrc, value)
}

// NeInt aborts when the integers are equal.
func (c *Checker) NeInt(unexpectedSrc string, unexpected int, valueSrc string, value int) {
	c.engine.CompareInt(1, diag.ModeNe, unexpectedSrc, unexpected, valueSrc, value)
}

// EqInt32 aborts unless the 32-bit integers are equal.
func (c *Checker) EqInt32(expectedSrc string, expected int32, valueSrc string, value int32) {
	c.engine.CompareInt32(1, diag.ModeEq, expectedSrc, expected, valueSrc, value)
}

// NeInt32 aborts when the 32-bit integers are equal.
func (c *Checker) NeInt32(unexpectedSrc string, unexpected int32, valueSrc string, value int32) {
	c.engine.CompareInt32(1, diag.ModeNe, unexpectedSrc, unexpected, valueSrc, value)
}

// EqInt64 aborts unless the 64-bit integers are equal.
func (c *Checker) EqInt64(expectedSrc string, expected int64, valueSrc string, value int64) {
	c.engine.CompareInt64(1, diag.ModeEq, expectedSrc, expected, valueSrc, value)
}

// NeInt64 aborts when the 64-bit integers are equal.
func (c *Checker) NeInt64(unexpectedSrc string, unexpected int64, valueSrc string, value int64) {
	c.engine.CompareInt64(1, diag.ModeNe, unexpectedSrc, unexpected, valueSrc, value)
}

// EqUintptr aborts unless the pointer-width integers are equal.
func (c *Checker) EqUintptr(expectedSrc string, expected uintptr, valueSrc string, value uintptr) {
	c.engine.CompareUintptr(1, diag.ModeEq, expectedSrc, expected, valueSrc, value)
}

// NeUintptr aborts when the pointer-width integers are equal.
func (c *Checker) NeUintptr(unexpectedSrc string, unexpected uintptr, valueSrc string, value uintptr) {
	c.engine.CompareUintptr(1, diag.ModeNe, unexpectedSrc, unexpected, valueSrc, value)
}

// EqFloat64 aborts unless the canonicalized doubles are equal.
func (c *Checker) EqFloat64(expectedSrc string, expected float64, valueSrc string, value float64) {
	c.engine.CompareFloat64(1, diag.ModeEq, expectedSrc, expected, valueSrc, value)
}

// NeFloat64 aborts when the canonicalized doubles are equal.
func (c *Checker) NeFloat64(unexpectedSrc string, unexpected float64, valueSrc string, value float64) {
	c.engine.CompareFloat64(1, diag.ModeNe, unexpectedSrc, unexpected, valueSrc, value)
}

// EqBytes aborts unless the byte strings are equal by content. Nil only
// equals nil.
func (c *Checker) EqBytes(expectedSrc string, expected []byte, valueSrc string, value []byte) {
	c.engine.CompareBytes(1, diag.ModeEq, expectedSrc, expected, valueSrc, value)
}

// NeBytes aborts when the byte strings are equal by content.
func (c *Checker) NeBytes(unexpectedSrc string, unexpected []byte, valueSrc string, value []byte) {
	c.engine.CompareBytes(1, diag.ModeNe, unexpectedSrc, unexpected, valueSrc, value)
}

// Gt aborts unless a > b.
func (c *Checker) Gt(aSrc string, a int64, bSrc string, b int64) {
	if a > b {
		return
	}

	c.engine.FailCheck(1, aSrc+" > "+bSrc)
}

// Ge aborts unless a >= b.
func (c *Checker) Ge(aSrc string, a int64, bSrc string, b int64) {
	if a >= b {
		return
	}

	c.engine.FailCheck(1, aSrc+" >= "+bSrc)
}

// Lt aborts unless a < b.
func (c *Checker) Lt(aSrc string, a int64, bSrc string, b int64) {
	if a < b {
		return
	}

	c.engine.FailCheck(1, aSrc+" < "+bSrc)
}

// Le aborts unless a <= b.
func (c *Checker) Le(aSrc string, a int64, bSrc string, b int64) {
	if a <= b {
		return
	}

	c.engine.FailCheck(1, aSrc+" <= "+bSrc)
}

// ---------------------------------------------------------------------------
// Aborts
// ---------------------------------------------------------------------------

// Fatal reports msg and aborts. The failure site is attributed only when the
// configuration has Debug set.
func (c *Checker) Fatal(msg string) {
	c.engine.Fatal(1, msg)
}

// Unimplemented aborts with "unimplemented code"; the failure site is
// attributed only when the configuration has Debug set.
func (c *Checker) Unimplemented() {
	c.engine.Unimplemented(1)
}

// Unreachable aborts with "unreachable code" when the configuration has
// Debug set; otherwise it is a silent fallthrough.
func (c *Checker) Unreachable() {
	c.engine.Unreachable(1)
}

// ---------------------------------------------------------------------------
// Development checks
// ---------------------------------------------------------------------------

// Assert behaves like That when the configuration has Debug set; otherwise
// it does nothing.
func (c *Checker) Assert(cond bool, src string) {
	if !c.cfg.Debug {
		return
	}

	c.engine.That(1, cond, src)
}

// AssertResult checks ok like Assert and returns it either way, so the
// checked expression's value (and side effect) survives release builds.
func (c *Checker) AssertResult(ok bool, src string) bool {
	if c.cfg.Debug {
		c.engine.That(1, ok, src)
	}

	return ok
}

// AssertNotNil aborts when v is nil (including typed-nil interfaces) and the
// configuration has Debug set.
func (c *Checker) AssertNotNil(v any, src string) {
	if !c.cfg.Debug {
		return
	}

	c.engine.NotNull(1, v, src)
}

// ExtraCheck behaves like That when the configuration has ExtraChecks set;
// otherwise it does nothing.
func (c *Checker) ExtraCheck(cond bool, src string) {
	if !c.cfg.ExtraChecks {
		return
	}

	c.engine.That(1, cond, src)
}

// ---------------------------------------------------------------------------
// PowerPC port checks
// ---------------------------------------------------------------------------

// PPCPortCheck behaves like That when the configuration has PPCPortChecks
// set; otherwise it does nothing.
func (c *Checker) PPCPortCheck(cond bool, src string) {
	if !c.cfg.PPCPortChecks {
		return
	}

	c.engine.That(1, cond, src)
}

// PPCPortUnimplemented aborts like Unimplemented when the configuration has
// PPCPortChecks set; otherwise it does nothing.
func (c *Checker) PPCPortUnimplemented() {
	if !c.cfg.PPCPortChecks {
		return
	}

	c.engine.Unimplemented(1)
}

// PPCPortUnsafeImplementation marks a knowingly unsafe implementation. It
// never checks anything in any configuration; the call is the annotation.
func (c *Checker) PPCPortUnsafeImplementation() {}
