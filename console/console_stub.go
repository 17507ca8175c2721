//go:build !js
// +build !js

package console

import (
	"fmt"
	"io"
	"os"
)

// Output receives console lines in non-WASM builds.
// The actual implementation is in console.go with the js build tag.
var Output io.Writer = os.Stderr

// Log prints to Output in non-WASM builds.
func Log(args ...any) {
	fmt.Fprintln(Output, args...)
}

// Warn prints to Output with a "warn:" prefix in non-WASM builds.
func Warn(args ...any) {
	fmt.Fprintln(Output, append([]any{"warn:"}, args...)...)
}

// Error prints to Output with an "error:" prefix in non-WASM builds.
func Error(args ...any) {
	fmt.Fprintln(Output, append([]any{"error:"}, args...)...)
}
