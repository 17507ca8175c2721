//go:build js
// +build js

package main

import (
	_ "embed"

	"github.com/rs/zerolog"

	"github.com/vcrobe/nojs-toast/bootstrap"
	"github.com/vcrobe/nojs-toast/console"
	"github.com/vcrobe/nojs-toast/dialogs"
	"github.com/vcrobe/nojs-toast/dom"
	"github.com/vcrobe/nojs-toast/events"
	"github.com/vcrobe/nojs-toast/toast"
)

//go:embed toast.yaml
var settingsYAML []byte

func main() {
	// 1. Diagnostics go to the browser console
	logger := zerolog.New(console.NewWriter()).With().Timestamp().Logger()

	// 2. Settings: page layout and widget options
	settings, err := toast.ParseSettings(settingsYAML)
	if err != nil {
		logger.Error().Err(err).Msg("invalid embedded toast settings, using defaults")
		settings = toast.DefaultSettings()
	}

	// 3. Optionally create the toast markup the page is missing
	doc := dom.NewDocument()
	if settings.Mount {
		if added := doc.MountMissing(settings.Targets, settings.MountSelector); added > 0 {
			logger.Info().Int("surfaces", added).Str("selector", settings.MountSelector).Msg("mounted toast markup")
		}
	}

	// 4. Wire the notifier. The factory looks bootstrap.Toast up per toast, so toasts
	// degrade to window.alert only while bootstrap.bundle.js is not loaded.
	cfg := &toast.Config{
		Document: doc,
		Widgets:  bootstrap.Factory(),
		Fallback: dialogs.AlertPresenter{},
		Logger:   logger,
	}
	settings.Apply(cfg)
	notifier := toast.New(cfg)

	if !bootstrap.Available() {
		logger.Warn().Msg("bootstrap is not loaded yet, toasts will use alert() until it is")
	}

	// 5. Expose showToast(message, isSuccess = true) to page scripts for the life of the page
	events.ExposeNotify("showToast", func(message string, isSuccess bool) {
		notifier.Notify(message, isSuccess)
	})

	// Keep the Go program running
	select {}
}
