//go:build js
// +build js

package events

import (
	"syscall/js"

	"github.com/vcrobe/nojs-toast/console"
)

// ExposeNotify registers window[name](message, isSuccess = true) so page
// scripts can call notify. The callback stays registered for the life of
// the page.
func ExposeNotify(name string, notify func(message string, isSuccess bool)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		notify(NotifyArgs(toGo(args)))
		return nil
	})
	js.Global().Set(name, fn)
	console.Log("[events] exposed", name)
}

// toGo mirrors how the page script treated its arguments: the message is
// converted with String(), and the flag only defaults when undefined,
// otherwise its truthiness decides.
func toGo(args []js.Value) []any {
	out := make([]any, 0, 2)
	if len(args) > 0 {
		switch {
		case args[0].IsUndefined() || args[0].IsNull():
			out = append(out, "")
		case args[0].Type() == js.TypeString:
			out = append(out, args[0].String())
		default:
			out = append(out, js.Global().Call("String", args[0]).String())
		}
	}
	if len(args) > 1 && !args[1].IsUndefined() {
		out = append(out, args[1].Truthy())
	}
	return out
}
