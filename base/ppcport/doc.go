// Package ppcport carries the PowerPC port's own check family, gated by the
// `ppcchecks` build tag.
//
// Port work rewrites code against an architecture the authors are still
// learning, so the port keeps its own checks for conditions the upstream
// code never needed to state. They are noisy and belong to the porting
// effort, not the product: port builds turn them on, everything else
// compiles them away.
//
// UnsafeImplementation is the exception that checks nothing anywhere. It
// marks a spot where the port knowingly diverges from correct behavior, so
// the remaining divergences can be found by searching for calls.
package ppcport
