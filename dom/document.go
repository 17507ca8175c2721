//go:build js
// +build js

package dom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-toast/console"
	"github.com/vcrobe/nojs-toast/toast"
	"github.com/vcrobe/nojs-toast/vdom"
)

// Document is a toast.Document over the page's global document.
type Document struct {
	doc js.Value
}

var _ toast.Document = (*Document)(nil)

// NewDocument returns a Document bound to the global document object.
func NewDocument() *Document {
	return &Document{doc: js.Global().Get("document")}
}

// ElementByID implements toast.Document with getElementById.
func (d *Document) ElementByID(id string) (toast.Element, bool) {
	if !d.doc.Truthy() || id == "" {
		return nil, false
	}
	el := d.doc.Call("getElementById", id)
	if !el.Truthy() {
		return nil, false
	}
	return &Element{value: el}, true
}

// MountMissing appends toast markup under the first element matching selector
// for every target whose container is not already in the page. An empty
// selector means "body". It returns the number of surfaces added.
func (d *Document) MountMissing(targets toast.Targets, selector string) int {
	var missing []vdom.ToastSurface
	for _, s := range Surfaces(targets) {
		if _, ok := d.ElementByID(s.ContainerID); !ok {
			missing = append(missing, s)
		}
	}
	if len(missing) == 0 {
		return 0
	}
	if selector == "" {
		selector = "body"
	}
	if !d.doc.Truthy() || !d.doc.Call("querySelector", selector).Truthy() {
		console.Error("toast: cannot mount markup, no element matches", selector)
		return 0
	}
	vdom.RenderToSelector(selector, vdom.ToastContainer(missing...))
	return len(missing)
}

// Element wraps a DOM element.
type Element struct {
	value js.Value
}

// SetText writes plain text through textContent.
func (e *Element) SetText(text string) {
	e.value.Set("textContent", text)
}

// JSValue returns the wrapped element for libraries that need the raw node.
func (e *Element) JSValue() js.Value {
	return e.value
}
