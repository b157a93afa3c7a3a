// Package backtrace dumps the current goroutine's stack for debugging.
//
// It is an on-demand utility: nothing in the failure path invokes it unless a
// reporter was explicitly configured to. Dumping never blocks the caller
// beyond the write itself and never panics.
package backtrace

import (
	"io"
	"os"
	"runtime/debug"
)

const banner = "\n==== Stack trace ===============================\n\n"

// Capture returns the formatted stack of the calling goroutine.
func Capture() []byte {
	return debug.Stack()
}

// Dump writes the current stack to standard error.
func Dump() {
	DumpTo(os.Stderr)
}

// DumpTo writes a banner followed by the current stack to w.
// Write errors are ignored; a broken sink must not disturb the caller.
func DumpTo(w io.Writer) {
	if w == nil {
		return
	}

	_, _ = io.WriteString(w, banner)
	_, _ = w.Write(Capture())
}
