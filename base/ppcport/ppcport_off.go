//go:build !ppcchecks

package ppcport

// Without the `ppcchecks` tag the port checks compile to empty shells.
// Arguments are still evaluated at the call site.

// Check does nothing.
func Check(_ bool, _ string) {}

// Unimplemented does nothing.
func Unimplemented() {}

// UnsafeImplementation marks a knowingly unsafe implementation. It never
// checks anything in any build mode; the call is the annotation.
func UnsafeImplementation() {}
