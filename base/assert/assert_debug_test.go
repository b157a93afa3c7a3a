//go:build debug

package assert_test

import (
	"io"
	"strings"
	"testing"

	"github.com/isabella232/v8ppc/base/assert"
	"github.com/isabella232/v8ppc/base/fatal"
	stdassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redirectDefault keeps abort banners out of the test output. Tests that
// call it share the default-reporter singleton and must not run in parallel.
func redirectDefault(t *testing.T) {
	t.Helper()

	fatal.SetDefault(fatal.NewReporter(fatal.Config{Output: io.Discard}))
	t.Cleanup(fatal.ResetDefault)
}

// recoverAbort runs fn and returns the report of the abort it must raise.
func recoverAbort(t *testing.T, fn func()) (ferr *fatal.Error) {
	t.Helper()

	defer func() {
		rec := recover()
		require.NotNil(t, rec, "expected the assertion to abort")

		var ok bool

		ferr, ok = rec.(*fatal.Error)
		require.True(t, ok, "abort must carry *fatal.Error, got %T", rec)
	}()

	fn()

	return nil
}

func TestDebugAssertionsAreActive(t *testing.T) {
	redirectDefault(t)

	stdassert.NotPanics(t, func() {
		assert.That(true, "ok")
		assert.Eq("a", 1, "b", 1)
		assert.Ne("a", 1, "b", 2)
		assert.Ge("3", int64(3), "3", int64(3))
		assert.Lt("3", int64(3), "5", int64(5))
		assert.Le("3", int64(3), "3", int64(3))
	})

	tests := []struct {
		name    string
		fn      func()
		wantMsg string
	}{
		{
			name:    "that",
			fn:      func() { assert.That(false, "stack aligned") },
			wantMsg: "CHECK(stack aligned) failed",
		},
		{
			name:    "eq",
			fn:      func() { assert.Eq("a", 1, "b", 2) },
			wantMsg: "CHECK_EQ(a, b) failed\n#   Expected: 1\n#   Found: 2",
		},
		{
			name:    "ne",
			fn:      func() { assert.Ne("a", int64(3), "b", int64(3)) },
			wantMsg: "CHECK_NE(a, b) failed\n#   Value: 0x0000000000000003",
		},
		{
			name:    "ge",
			fn:      func() { assert.Ge("a", int64(3), "b", int64(5)) },
			wantMsg: "CHECK(a >= b) failed",
		},
		{
			name:    "lt",
			fn:      func() { assert.Lt("a", int64(5), "b", int64(3)) },
			wantMsg: "CHECK(a < b) failed",
		},
		{
			name:    "le",
			fn:      func() { assert.Le("a", int64(9), "b", int64(5)) },
			wantMsg: "CHECK(a <= b) failed",
		},
		{
			name:    "not nil",
			fn:      func() { assert.NotNil(nil, "code") },
			wantMsg: "CHECK_NE(NULL, code) failed\n#   Value: NULL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ferr := recoverAbort(t, tt.fn)
			stdassert.Equal(t, tt.wantMsg, ferr.Message)
			stdassert.True(t, strings.HasSuffix(ferr.File, "assert_debug_test.go"),
				"failure site must be the call site, got %q", ferr.File)
		})
	}
}

func TestDebugResultChecksAndReturns(t *testing.T) {
	redirectDefault(t)

	stdassert.True(t, assert.Result(true, "write(fd)"))

	ferr := recoverAbort(t, func() {
		assert.Result(false, "write(fd)")
	})

	stdassert.Equal(t, "CHECK(write(fd)) failed", ferr.Message)
}

func TestDebugPointerAssertions(t *testing.T) {
	redirectDefault(t)

	v := 7
	p := &v
	q := new(int)

	stdassert.NotPanics(t, func() {
		assert.EqPtr("p", p, "p", p)
		assert.NePtr("p", p, "q", q)
	})

	ferr := recoverAbort(t, func() {
		assert.EqPtr("p", p, "q", q)
	})

	stdassert.True(t, strings.HasPrefix(ferr.Message, "CHECK_EQ(p, q) failed\n#   Expected: 0x"),
		"got %q", ferr.Message)
}

func TestDebugNotNilTypedNil(t *testing.T) {
	redirectDefault(t)

	var p *int

	ferr := recoverAbort(t, func() {
		assert.NotNil(p, "frame")
	})

	stdassert.Equal(t, "CHECK_NE(NULL, frame) failed\n#   Value: NULL", ferr.Message)
}
