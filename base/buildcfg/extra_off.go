//go:build !extrachecks

package buildcfg

// ExtraChecks is false in builds compiled without the `extrachecks` tag.
const ExtraChecks = false
