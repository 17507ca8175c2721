// Package toast shows transient notifications through an injected widget
// library and falls back to a blocking presenter when the widget or its
// container element is unavailable.
//
// The notifier never fails its caller. Every failure (missing widget
// library, missing container, a widget that errors or panics) is logged at
// error level and the message is handed to the fallback presenter instead.
//
// In the browser the capabilities come from sibling packages:
//
//	n := toast.New(&toast.Config{
//	    Document: dom.NewDocument(),
//	    Widgets:  bootstrap.Factory(), // resolves bootstrap.Toast per toast
//	    Fallback: dialogs.AlertPresenter{},
//	    Logger:   zerolog.New(console.NewWriter()),
//	})
//
//	n.Notify("Saved successfully")
//	n.Notify("Save failed", false)
package toast
