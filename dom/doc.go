// Package dom provides toast.Document implementations: one over the browser
// DOM through syscall/js, and an in-memory one backed by a vdom tree for
// headless hosts and tests.
package dom
