package toast

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Config holds the capabilities a Notifier is built from.
// Every field is optional; missing capabilities push toasts onto the fallback path.
type Config struct {
	Document Document
	Widgets  WidgetFactory
	Fallback Presenter
	Observer Observer

	// Targets defaults to DefaultTargets().
	Targets Targets
	// Options defaults to DefaultOptions() when left as the zero value.
	Options Options

	// Logger receives the diagnostics for the fallback path.
	// The zero value discards them.
	Logger zerolog.Logger
}

// Notifier displays toasts. It keeps no state between calls and never
// hands an error or a panic back to its caller.
type Notifier struct {
	doc      Document
	widgets  WidgetFactory
	fallback Presenter
	observer Observer
	targets  Targets
	opts     Options
	log      zerolog.Logger
}

// New creates a Notifier from the given config. A nil config yields a
// notifier with no capabilities, which only logs.
func New(cfg *Config) *Notifier {
	if cfg == nil {
		cfg = &Config{}
	}

	n := &Notifier{
		doc:      cfg.Document,
		widgets:  cfg.Widgets,
		fallback: cfg.Fallback,
		observer: cfg.Observer,
		targets:  cfg.Targets,
		opts:     cfg.Options,
		log:      cfg.Logger.With().Str("component", "toast").Logger(),
	}
	if n.targets == nil {
		n.targets = DefaultTargets()
	}
	if n.opts == (Options{}) {
		n.opts = DefaultOptions()
	}
	return n
}

// Notify shows message on the success surface, or on the error surface
// when isSuccess is given and false.
func (n *Notifier) Notify(message string, isSuccess ...bool) {
	level := LevelSuccess
	if len(isSuccess) > 0 && !isSuccess[0] {
		level = LevelError
	}
	n.Show(level, message)
}

// Success shows message on the success surface.
func (n *Notifier) Success(message string) { n.Show(LevelSuccess, message) }

// Error shows message on the error surface.
func (n *Notifier) Error(message string) { n.Show(LevelError, message) }

// Show writes message into the level's message element and displays the
// level's container through the widget factory. When that is not possible
// the message goes to the fallback presenter.
func (n *Notifier) Show(level Level, message string) {
	target, ok := n.targets[level]
	shown := false

	defer func() {
		r := recover()
		switch {
		case r == nil:
		case shown:
			// The widget is already on screen; an alert on top of it would duplicate the message.
			n.log.Error().
				Str("severity", string(level)).
				Interface("panic", r).
				Msg("toast shown, post-show hook failed")
		default:
			n.degrade(level, target, message, ReasonPanic, fmt.Errorf("recovered: %v", r))
		}
	}()

	if !ok {
		n.degrade(level, target, message, ReasonUnmapped, nil)
		return
	}

	if el, found := n.lookup(target.MessageID); found {
		el.SetText(message)
	}

	container, found := n.lookup(target.ContainerID)
	switch {
	case n.widgets == nil:
		n.degrade(level, target, message, ReasonNoWidget, nil)
		return
	case !found:
		n.degrade(level, target, message, ReasonNoContainer, nil)
		return
	}

	w, err := n.widgets.NewWidget(container, n.opts)
	if err == nil && w == nil {
		err = errors.New("widget factory returned no widget")
	}
	switch {
	case errors.Is(err, ErrWidgetUnavailable):
		n.degrade(level, target, message, ReasonNoWidget, err)
		return
	case err != nil:
		n.degrade(level, target, message, ReasonWidgetError, err)
		return
	}
	w.Show()
	shown = true

	if n.observer != nil {
		n.guard(level, "observer", func() { n.observer.Shown(level) })
	}
}

func (n *Notifier) lookup(id string) (Element, bool) {
	if n.doc == nil || id == "" {
		return nil, false
	}
	el, ok := n.doc.ElementByID(id)
	if !ok || el == nil {
		return nil, false
	}
	return el, true
}

// degrade logs the failure and presents the message on the fallback path.
// The observer and the presenter each run under their own recover, so one
// failing does not skip the other.
func (n *Notifier) degrade(level Level, target Target, message string, reason Reason, err error) {
	ev := n.log.Error().
		Str("severity", string(level)).
		Str("reason", string(reason)).
		Str("message_id", target.MessageID).
		Str("container_id", target.ContainerID)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("toast presentation unavailable")

	if n.observer != nil {
		n.guard(level, "observer", func() { n.observer.Fallback(level, reason) })
	}
	if n.fallback != nil {
		n.guard(level, "fallback", func() { n.fallback.Present(message) })
	}
}

// guard runs fn and logs a panic instead of propagating it.
func (n *Notifier) guard(level Level, what string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Error().
				Str("severity", string(level)).
				Str("hook", what).
				Interface("panic", r).
				Msg("toast hook failed")
		}
	}()
	fn()
}
