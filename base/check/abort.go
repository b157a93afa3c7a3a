package check

import (
	"github.com/isabella232/v8ppc/base/buildcfg"
	"github.com/isabella232/v8ppc/base/internal/diag"
)

// Fatal reports msg and aborts in every build mode. The failure site is
// attributed only in debug builds; release reports carry the message alone.
func Fatal(msg string) {
	diag.Std().Fatal(1, msg)
}

// Unimplemented marks a code path that has not been written. It aborts in
// every build mode with "unimplemented code"; the failure site is attributed
// only in debug builds.
func Unimplemented() {
	diag.Std().Unimplemented(1)
}

// Unreachable marks a code path the author believes cannot execute. Debug
// builds abort with "unreachable code". Release builds compile it away
// entirely: if the path is reached, execution continues at the call site.
func Unreachable() {
	if !buildcfg.Debug {
		return
	}

	diag.Std().Unreachable(1)
}
