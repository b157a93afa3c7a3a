//go:build !unix

package fatal

import "os"

// ProcessAborter terminates the whole process. On platforms without SIGABRT
// delivery it exits directly.
type ProcessAborter struct{}

// Abort implements Aborter.
func (ProcessAborter) Abort(_ string, _ int, _ string, _ ...any) {
	os.Exit(2)
}
