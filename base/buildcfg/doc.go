// Package buildcfg exposes the compile-time diagnostic configuration.
//
// Three independent axes are fixed when a binary is built, each controlled by
// a build tag:
//
//	debug       -- development checks (the assert family, fatal source locations)
//	extrachecks -- expensive consistency checks on hot paths
//	ppcchecks   -- extra checks for the PowerPC port
//
// Each axis surfaces as an untyped constant (Debug, ExtraChecks,
// PPCPortChecks) so disabled branches fold away entirely, and as a field of
// Config for code that needs an explicit, testable configuration value.
package buildcfg
