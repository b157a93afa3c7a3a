package diag

// Mode selects the comparison predicate of a typed check.
type Mode uint8

const (
	// ModeEq passes when the operands are equal.
	ModeEq Mode = iota
	// ModeNe passes when the operands differ.
	ModeNe
)

// passes reports whether the check holds given the operands' equality.
func (m Mode) passes(equal bool) bool {
	if m == ModeEq {
		return equal
	}

	return !equal
}

// Operand kinds, used as metric labels.
const (
	kindNone    = ""
	kindBool    = "bool"
	kindInt     = "int"
	kindInt32   = "int32"
	kindInt64   = "int64"
	kindUintptr = "uintptr"
	kindFloat64 = "float64"
	kindBytes   = "bytes"
	kindPtr     = "ptr"
)

// Kinds is the closed set of operand types with a dedicated comparison path.
// Exact types only: dispatch resolves through a runtime type switch, which a
// named type would miss.
type Kinds interface {
	int | int32 | int64 | uintptr | float64 | []byte
}

// Compare dispatches a typed equality check to the operand kind's comparison.
func Compare[T Kinds](e *Engine, depth int, mode Mode, expectedSrc string, expected T, valueSrc string, value T) {
	switch exp := any(expected).(type) {
	case int:
		e.CompareInt(depth+1, mode, expectedSrc, exp, valueSrc, any(value).(int))
	case int32:
		e.CompareInt32(depth+1, mode, expectedSrc, exp, valueSrc, any(value).(int32))
	case int64:
		e.CompareInt64(depth+1, mode, expectedSrc, exp, valueSrc, any(value).(int64))
	case uintptr:
		e.CompareUintptr(depth+1, mode, expectedSrc, exp, valueSrc, any(value).(uintptr))
	case float64:
		e.CompareFloat64(depth+1, mode, expectedSrc, exp, valueSrc, any(value).(float64))
	case []byte:
		e.CompareBytes(depth+1, mode, expectedSrc, exp, valueSrc, any(value).([]byte))
	}
}

// ComparePtr checks pointer identity. Pointee contents never participate.
func ComparePtr[P any](e *Engine, depth int, mode Mode, expectedSrc string, expected *P, valueSrc string, value *P) {
	if mode.passes(expected == value) {
		return
	}

	e.failCompare(depth+1, mode, kindPtr, expectedSrc, valueSrc, renderPtr(expected), renderPtr(value))
}

// CompareInt checks platform-width integers, rendered in decimal.
func (e *Engine) CompareInt(depth int, mode Mode, expectedSrc string, expected int, valueSrc string, value int) {
	if mode.passes(expected == value) {
		return
	}

	e.failCompare(depth+1, mode, kindInt, expectedSrc, valueSrc,
		renderInt(int64(expected)), renderInt(int64(value)))
}

// CompareInt32 checks 32-bit integers, rendered in decimal.
func (e *Engine) CompareInt32(depth int, mode Mode, expectedSrc string, expected int32, valueSrc string, value int32) {
	if mode.passes(expected == value) {
		return
	}

	e.failCompare(depth+1, mode, kindInt32, expectedSrc, valueSrc,
		renderInt(int64(expected)), renderInt(int64(value)))
}

// CompareInt64 checks 64-bit integers. Values render as two 32-bit
// hexadecimal halves, high word first, independent of host endianness.
func (e *Engine) CompareInt64(depth int, mode Mode, expectedSrc string, expected int64, valueSrc string, value int64) {
	if mode.passes(expected == value) {
		return
	}

	e.failCompare(depth+1, mode, kindInt64, expectedSrc, valueSrc,
		renderInt64(expected), renderInt64(value))
}

// CompareUintptr checks pointer-width integers, rendered in hexadecimal.
func (e *Engine) CompareUintptr(depth int, mode Mode, expectedSrc string, expected uintptr, valueSrc string, value uintptr) {
	if mode.passes(expected == value) {
		return
	}

	e.failCompare(depth+1, mode, kindUintptr, expectedSrc, valueSrc,
		renderUintptr(expected), renderUintptr(value))
}

// CompareFloat64 checks doubles. Both operands pass through canonicalFloat
// first, pinning the comparison to the 64-bit representation regardless of
// any wider intermediate the expressions were computed in.
func (e *Engine) CompareFloat64(depth int, mode Mode, expectedSrc string, expected float64, valueSrc string, value float64) {
	if mode.passes(canonicalFloat(expected) == canonicalFloat(value)) {
		return
	}

	e.failCompare(depth+1, mode, kindFloat64, expectedSrc, valueSrc,
		renderFloat(expected), renderFloat(value))
}

// CompareBytes checks nullable byte strings by content. Two nil slices are
// equal; nil and non-nil differ even when the non-nil slice is empty.
func (e *Engine) CompareBytes(depth int, mode Mode, expectedSrc string, expected []byte, valueSrc string, value []byte) {
	if mode.passes(bytesEqual(expected, value)) {
		return
	}

	e.failCompare(depth+1, mode, kindBytes, expectedSrc, valueSrc,
		renderBytes(expected), renderBytes(value))
}

// failCompare renders a failed comparison. The unexpected operand's rendering
// is dropped in not-equals mode: both operands were equal, so one suffices.
func (e *Engine) failCompare(depth int, mode Mode, kind, expectedSrc, valueSrc, expected, value string) {
	file, line := caller(depth)

	if mode == ModeEq {
		e.failf(file, line, checkEqName, kind, eqFailedFormat, expectedSrc, valueSrc, expected, value)
		return
	}

	e.failf(file, line, checkNeName, kind, neFailedFormat, expectedSrc, valueSrc, value)
}
