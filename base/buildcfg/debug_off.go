//go:build !debug

package buildcfg

// Debug is false in builds compiled without the `debug` tag.
const Debug = false
