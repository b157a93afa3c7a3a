//go:build unix

package fatal

import (
	"os"

	"golang.org/x/sys/unix"
)

// ProcessAborter terminates the whole process. It raises SIGABRT so the OS
// can produce a core dump where one is configured, falling back to a plain
// exit if the signal is blocked or ignored.
//
// Install it on the default reporter in production binaries that want core
// dumps instead of a panic trace.
type ProcessAborter struct{}

// Abort implements Aborter.
func (ProcessAborter) Abort(_ string, _ int, _ string, _ ...any) {
	_ = unix.Kill(unix.Getpid(), unix.SIGABRT)

	os.Exit(2)
}
