//go:build ppcchecks

package ppcport

import "github.com/isabella232/v8ppc/base/internal/diag"

// Check aborts unless cond holds, reporting exactly like check.That.
func Check(cond bool, src string) {
	diag.Std().That(1, cond, src)
}

// Unimplemented aborts with "unimplemented code"; the failure site is
// attributed only in debug builds.
func Unimplemented() {
	diag.Std().Unimplemented(1)
}

// UnsafeImplementation marks a knowingly unsafe implementation. It never
// checks anything in any build mode; the call is the annotation.
func UnsafeImplementation() {}
