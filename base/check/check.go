package check

import "github.com/isabella232/v8ppc/base/internal/diag"

// Kind is the closed set of operand types with a dedicated comparison path:
//
//	int, int32     decimal rendering
//	int64          two 32-bit hexadecimal halves
//	uintptr        hexadecimal
//	float64        64-bit canonicalized comparison, decimal rendering
//	[]byte         content comparison; nil is distinct from empty
//
// Pointers are compared by identity through EqPtr and NePtr.
type Kind interface {
	int | int32 | int64 | uintptr | float64 | []byte
}

// That aborts unless cond holds. src is the source text of the condition.
func That(cond bool, src string) {
	diag.Std().That(1, cond, src)
}

// Eq aborts unless expected and value are equal under T's comparison.
// The report names both source expressions and renders both operands.
func Eq[T Kind](expectedSrc string, expected T, valueSrc string, value T) {
	diag.Compare(diag.Std(), 1, diag.ModeEq, expectedSrc, expected, valueSrc, value)
}

// Ne aborts when unexpected and value are equal under T's comparison.
func Ne[T Kind](unexpectedSrc string, unexpected T, valueSrc string, value T) {
	diag.Compare(diag.Std(), 1, diag.ModeNe, unexpectedSrc, unexpected, valueSrc, value)
}

// EqPtr aborts unless expected and value are the same pointer. Pointee
// contents never participate: distinct allocations with equal contents
// compare unequal.
func EqPtr[P any](expectedSrc string, expected *P, valueSrc string, value *P) {
	diag.ComparePtr(diag.Std(), 1, diag.ModeEq, expectedSrc, expected, valueSrc, value)
}

// NePtr aborts when unexpected and value are the same pointer.
func NePtr[P any](unexpectedSrc string, unexpected *P, valueSrc string, value *P) {
	diag.ComparePtr(diag.Std(), 1, diag.ModeNe, unexpectedSrc, unexpected, valueSrc, value)
}
