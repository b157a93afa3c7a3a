//go:build !debug

package assert

import (
	"cmp"

	"github.com/isabella232/v8ppc/base/check"
)

// Without the `debug` tag the assertion family compiles to empty shells.
// Arguments are still evaluated at the call site; only the checks vanish.

// That does nothing.
func That(_ bool, _ string) {}

// Eq does nothing.
func Eq[T check.Kind](_ string, _ T, _ string, _ T) {}

// Ne does nothing.
func Ne[T check.Kind](_ string, _ T, _ string, _ T) {}

// EqPtr does nothing.
func EqPtr[P any](_ string, _ *P, _ string, _ *P) {}

// NePtr does nothing.
func NePtr[P any](_ string, _ *P, _ string, _ *P) {}

// Ge does nothing.
func Ge[T cmp.Ordered](_ string, _ T, _ string, _ T) {}

// Lt does nothing.
func Lt[T cmp.Ordered](_ string, _ T, _ string, _ T) {}

// Le does nothing.
func Le[T cmp.Ordered](_ string, _ T, _ string, _ T) {}

// Result returns ok unchecked, preserving the asserted expression's value
// and side effect.
func Result(ok bool, _ string) bool { return ok }

// NotNil does nothing.
func NotNil(_ any, _ string) {}
