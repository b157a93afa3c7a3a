//go:build extrachecks

package check

import "github.com/isabella232/v8ppc/base/internal/diag"

// Extra aborts unless cond holds. Extra checks cover consistency conditions
// too expensive for ordinary builds; they are compiled only under the
// `extrachecks` tag and report exactly like That.
func Extra(cond bool, src string) {
	diag.Std().That(1, cond, src)
}
