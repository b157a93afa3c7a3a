package check

import (
	"cmp"

	"github.com/isabella232/v8ppc/base/internal/diag"
)

// The relational checks reduce to the unconditional check on the relational
// expression: the report quotes it as "<a> <op> <b>" without rendering the
// operand values.

// Gt aborts unless a > b.
func Gt[T cmp.Ordered](aSrc string, a T, bSrc string, b T) {
	if a > b {
		return
	}

	diag.Std().FailCheck(1, aSrc+" > "+bSrc)
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
