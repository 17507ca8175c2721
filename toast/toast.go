package toast

import (
	"errors"
	"time"
)

// Level selects which presentation surface a toast is shown on.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Target names the two page elements used for one level: the element that
// receives the message text and the container the widget is bound to.
type Target struct {
	MessageID   string
	ContainerID string
}

// Targets maps each level to its pair of elements.
type Targets map[Level]Target

// DefaultTargets returns the stock page layout:
// success -> (toastMessage, successToast), error -> (errorMessage, errorToast).
func DefaultTargets() Targets {
	return Targets{
		LevelSuccess: {MessageID: "toastMessage", ContainerID: "successToast"},
		LevelError:   {MessageID: "errorMessage", ContainerID: "errorToast"},
	}
}

// Options configures the widget constructed for each toast.
type Options struct {
	Animation bool
	Autohide  bool
	Delay     time.Duration
}

// DefaultOptions returns animated, auto-dismissing toasts with a 3s delay.
func DefaultOptions() Options {
	return Options{Animation: true, Autohide: true, Delay: 3 * time.Second}
}

// Map returns the options in the shape widget libraries expect,
// with the delay expressed in milliseconds.
func (o Options) Map() map[string]any {
	return map[string]any{
		"animation": o.Animation,
		"autohide":  o.Autohide,
		"delay":     o.Delay.Milliseconds(),
	}
}

// Element is a page element the notifier can write text into.
// Implementations must set plain text, never markup.
type Element interface {
	SetText(text string)
}

// Document looks elements up by id.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// Widget is a constructed toast ready to be displayed.
type Widget interface {
	Show()
}

// WidgetFactory builds a widget bound to a container element.
// A nil WidgetFactory means no widget library is available; a factory that
// resolves its library lazily reports absence with ErrWidgetUnavailable.
type WidgetFactory interface {
	NewWidget(container Element, opts Options) (Widget, error)
}

// ErrWidgetUnavailable is returned by a WidgetFactory whose library is not
// loaded at the time of the call. The notifier treats it like a nil factory.
var ErrWidgetUnavailable = errors.New("toast: widget library unavailable")

// WidgetFactoryFunc adapts a function to WidgetFactory.
type WidgetFactoryFunc func(container Element, opts Options) (Widget, error)

func (f WidgetFactoryFunc) NewWidget(container Element, opts Options) (Widget, error) {
	return f(container, opts)
}

// Presenter shows a message on the degraded path, typically a blocking alert.
type Presenter interface {
	Present(message string)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(message string)

func (f PresenterFunc) Present(message string) { f(message) }

// Reason explains why a toast took the fallback path.
type Reason string

const (
	ReasonNoWidget    Reason = "widget_unavailable"
	ReasonNoContainer Reason = "container_missing"
	ReasonUnmapped    Reason = "level_unmapped"
	ReasonWidgetError Reason = "widget_error"
	ReasonPanic       Reason = "panic"
)

// Observer is notified of the path every toast took.
type Observer interface {
	Shown(level Level)
	Fallback(level Level, reason Reason)
}
