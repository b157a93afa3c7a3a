//go:build ppcchecks

package buildcfg

// PPCPortChecks is true in builds compiled with the `ppcchecks` tag.
const PPCPortChecks = true
