//go:build js
// +build js

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-toast/console"
)

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil || n.Tag == "" {
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		el.Call("setAttribute", k, v)
	}
	// Content is always text, never parsed as markup.
	if n.Content != "" {
		el.Set("textContent", n.Content)
	}
	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}
	return el
}
