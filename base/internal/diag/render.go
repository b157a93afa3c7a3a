package diag

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Renderers build the operand text for failure messages. They use only
// non-failing primitives: a check that fires must never itself fail.

// renderInt renders a decimal integer.
func renderInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// renderInt64 renders a 64-bit value as two zero-padded 32-bit hexadecimal
// halves, high word first. The fixed split keeps output identical across
// endianness and printf quirks with 64-bit verbs.
func renderInt64(v int64) string {
	u := uint64(v)

	return fmt.Sprintf("0x%08x%08x", uint32(u>>32), uint32(u))
}

// renderUintptr renders a pointer-width integer in hexadecimal.
func renderUintptr(v uintptr) string {
	return "0x" + strconv.FormatUint(uint64(v), 16)
}

// renderFloat renders a double with six decimal places.
func renderFloat(v float64) string {
	return fmt.Sprintf("%f", v)
}

// renderBytes renders byte-string content; nil renders as NULL.
func renderBytes(b []byte) string {
	if b == nil {
		return "NULL"
	}

	return string(b)
}

// renderPtr renders a pointer address.
func renderPtr(p any) string {
	return fmt.Sprintf("%p", p)
}

// canonicalFloat round-trips v through its 64-bit bit pattern. The result is
// exactly the stored double: comparing canonicalized operands ignores any
// extra precision an intermediate computation may have carried.
func canonicalFloat(v float64) float64 {
	return math.Float64frombits(math.Float64bits(v))
}

// bytesEqual compares nullable byte strings. Nil-ness is significant: a nil
// slice only equals another nil slice, so bytes.Equal alone (which treats nil
// and empty alike) is not enough.
func bytesEqual(a, b []byte) bool {
	if (a == nil) != (b == nil) {
		return false
	}

	return bytes.Equal(a, b)
}

// IsNil reports whether value is nil, including typed-nil interfaces.
func IsNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
