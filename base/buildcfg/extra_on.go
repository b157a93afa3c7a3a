//go:build extrachecks

package buildcfg

// ExtraChecks is true in builds compiled with the `extrachecks` tag.
const ExtraChecks = true
