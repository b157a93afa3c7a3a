//go:build debug

package assert

import (
	"cmp"

	"github.com/isabella232/v8ppc/base/check"
	"github.com/isabella232/v8ppc/base/internal/diag"
)

// That aborts unless cond holds. src is the source text of the condition.
func That(cond bool, src string) {
	diag.Std().That(1, cond, src)
}

// Eq aborts unless expected and value are equal under T's comparison.
func Eq[T check.Kind](expectedSrc string, expected T, valueSrc string, value T) {
	diag.Compare(diag.Std(), 1, diag.ModeEq, expectedSrc, expected, valueSrc, value)
}

// Ne aborts when unexpected and value are equal under T's comparison.
func Ne[T check.Kind](unexpectedSrc string, unexpected T, valueSrc string, value T) {
	diag.Compare(diag.Std(), 1, diag.ModeNe, unexpectedSrc, unexpected, valueSrc, value)
}

// EqPtr aborts unless expected and value are the same pointer.
func EqPtr[P any](expectedSrc string, expected *P, valueSrc string, value *P) {
	diag.ComparePtr(diag.Std(), 1, diag.ModeEq, expectedSrc, expected, valueSrc, value)
}

// NePtr aborts when unexpected and value are the same pointer.
func NePtr[P any](unexpectedSrc string, unexpected *P, valueSrc string, value *P) {
	diag.ComparePtr(diag.Std(), 1, diag.ModeNe, unexpectedSrc, unexpected, valueSrc, value)
}

// Ge aborts unless a >= b.
func Ge[T cmp.Ordered](aSrc string, a T, bSrc string, b T) {
	if a >= b {
		return
	}

	diag.Std().FailCheck(1, aSrc+" >= "+bSrc)
}

// Lt aborts unless a < b.
func Lt[T cmp.Ordered](aSrc string, a T, bSrc string, b T) {
	if a < b {
		return
	}

	diag.Std().FailCheck(1, aSrc+" < "+bSrc)
}

// Le aborts unless a <= b.
func Le[T cmp.Ordered](aSrc string, a T, bSrc string, b T) {
	if a <= b {
		return
	}

	diag.Std().FailCheck(1, aSrc+" <= "+bSrc)
}

// Result aborts unless ok holds, then returns ok. The return value is what
// release builds keep.
func Result(ok bool, src string) bool {
	diag.Std().That(1, ok, src)
	return ok
}

// NotNil aborts when v is nil, including typed-nil pointers boxed in
// interfaces. src is the source text of the value expression.
func NotNil(v any, src string) {
	diag.Std().NotNull(1, v, src)
}
