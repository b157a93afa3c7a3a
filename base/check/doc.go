// Package check provides the always-on invariant checks. A violated check
// writes a file/line-attributed report through the fatal package and aborts;
// there is no recovery path. Passing checks cost a comparison and nothing
// else.
//
// Each function takes the source text of the expression it checked so the
// report reads like the call site:
//
//	check.That(offset >= 0, "offset >= 0")
//	check.Eq("limit", limit, "len(buf)", int64(len(buf)))
//
// The functions in this package are compiled into every build. The assert
// package carries the development-only family, and the extrachecks and
// ppcchecks build tags gate Extra and the ppcport package.
//
// The Checker type evaluates the same operations against an explicit
// configuration, so behavior under any combination of build axes can be
// exercised in one test run.
package check
