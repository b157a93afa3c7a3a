package backtrace_test

import (
	"bytes"
	"testing"

	"github.com/isabella232/v8ppc/base/backtrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_ContainsCallingFunction(t *testing.T) {
	t.Parallel()

	stack := backtrace.Capture()

	require.NotEmpty(t, stack)
	assert.Contains(t, string(stack), "goroutine")
	assert.Contains(t, string(stack), "TestCapture_ContainsCallingFunction")
}

func TestDumpTo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	backtrace.DumpTo(&buf)

	out := buf.String()
	assert.Contains(t, out, "==== Stack trace ===============================")
	assert.Contains(t, out, "goroutine")
	assert.Contains(t, out, "TestDumpTo")
}

func TestDumpTo_NilWriter(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		backtrace.DumpTo(nil)
	})
}
