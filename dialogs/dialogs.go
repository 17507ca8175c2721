//go:build js
// +build js

package dialogs

import (
	"syscall/js"

	"github.com/vcrobe/nojs-toast/toast"
)

func Alert(msg string) {
	js.Global().Call("alert", msg)
}

// AlertPresenter presents fallback toasts with window.alert, which blocks
// the page until the user dismisses it.
type AlertPresenter struct{}

var _ toast.Presenter = AlertPresenter{}

func (AlertPresenter) Present(message string) {
	Alert(message)
}
