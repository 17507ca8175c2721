//go:build !js
// +build !js

package events

// Stub file for non-WASM builds so hosts sharing wiring code still compile.
// The actual implementation is in events.go with the js build tag.

// ExposeNotify is a no-op in non-WASM builds.
func ExposeNotify(name string, notify func(message string, isSuccess bool)) {}
