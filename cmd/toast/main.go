// Command toast drives the notifier outside a browser: the page is an
// in-memory document, toasts render as boxes on stdout, and the fallback
// presenter writes to stderr.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
