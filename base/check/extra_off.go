//go:build !extrachecks

package check

// Extra is a no-op without the `extrachecks` tag. Arguments are still
// evaluated at the call site; guard expensive conditions with
// buildcfg.ExtraChecks where that matters.
func Extra(_ bool, _ string) {}
