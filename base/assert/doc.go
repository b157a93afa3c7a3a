// Package assert provides the development-only counterpart of package check.
//
// Under the `debug` build tag every function behaves exactly like its check
// equivalent: a violated assertion writes the same report and aborts the same
// way. Without the tag the functions are empty shells the compiler discards,
// so shipping binaries pay nothing for assertions on hot paths.
//
// Two functions survive release builds with meaning. Result evaluates its
// argument in every build mode and returns it, so an asserted expression with
// a side effect keeps the side effect and the value. NotNil exists because
// nil receivers and typed-nil interfaces are the most common latent bug this
// family catches; it shares check's nil semantics.
//
// Arguments are evaluated at the call site in every build mode. Hoist
// expensive condition expressions behind buildcfg.Debug when that matters.
package assert
