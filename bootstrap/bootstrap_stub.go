//go:build !js
// +build !js

// Package bootstrap adapts Bootstrap's bootstrap.Toast component to toast.WidgetFactory.
package bootstrap

import "github.com/vcrobe/nojs-toast/toast"

// Factory returns nil outside the browser: there is no page to load Bootstrap into.
func Factory() toast.WidgetFactory {
	return nil
}

// Available is always false outside the browser.
func Available() bool {
	return false
}
