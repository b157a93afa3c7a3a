// Package log defines the structured logging interface and typed logging
// fields used by the diagnostic reporting packages.
//
// Adapters (such as the zap package) implement Logger so the failure path can
// stay consistent across backends; GoLogger and NewNop cover programs that
// bring no backend of their own.
package log
