//go:build !ppcchecks

package buildcfg

// PPCPortChecks is false in builds compiled without the `ppcchecks` tag.
const PPCPortChecks = false
