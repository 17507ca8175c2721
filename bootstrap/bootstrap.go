//go:build js
// +build js

// Package bootstrap adapts Bootstrap's bootstrap.Toast component to toast.WidgetFactory.
//
// The constructor is looked up on every NewWidget call, so a page that loads
// bootstrap.bundle.js after the WASM module starts still gets real toasts
// once the script has run. Until then NewWidget reports toast.ErrWidgetUnavailable.
package bootstrap

import (
	"fmt"
	"syscall/js"

	"github.com/vcrobe/nojs-toast/toast"
)

type factory struct{}

// Factory returns a widget factory over the global bootstrap.Toast constructor.
func Factory() toast.WidgetFactory {
	return factory{}
}

// Available reports whether bootstrap.Toast is currently defined.
func Available() bool {
	_, ok := constructor()
	return ok
}

func constructor() (js.Value, bool) {
	ns := js.Global().Get("bootstrap")
	if !ns.Truthy() {
		return js.Undefined(), false
	}
	ctor := ns.Get("Toast")
	if ctor.Type() != js.TypeFunction {
		return js.Undefined(), false
	}
	return ctor, true
}

// NewWidget runs `new bootstrap.Toast(container, options)`.
func (factory) NewWidget(container toast.Element, opts toast.Options) (toast.Widget, error) {
	ctor, ok := constructor()
	if !ok {
		return nil, toast.ErrWidgetUnavailable
	}
	el, ok := container.(interface{ JSValue() js.Value })
	if !ok {
		return nil, fmt.Errorf("bootstrap: container %T is not a DOM element", container)
	}
	instance := ctor.New(el.JSValue(), js.ValueOf(opts.Map()))
	if !instance.Truthy() {
		return nil, fmt.Errorf("bootstrap: Toast constructor returned %s", instance.Type())
	}
	return widget{instance: instance}, nil
}

type widget struct {
	instance js.Value
}

func (w widget) Show() {
	w.instance.Call("show")
}
