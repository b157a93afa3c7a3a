//go:build debug

package buildcfg

// Debug is true in builds compiled with the `debug` tag.
const Debug = true
