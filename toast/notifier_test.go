//go:build !wasm

package toast_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-toast/toast"
)

// fakeElement records the text written to it.
type fakeElement struct {
	id   string
	text string
}

func (e *fakeElement) SetText(text string) { e.text = text }

// fakeDocument is a map-backed toast.Document.
type fakeDocument map[string]*fakeElement

func newFakeDocument(ids ...string) fakeDocument {
	d := fakeDocument{}
	for _, id := range ids {
		d[id] = &fakeElement{id: id}
	}
	return d
}

func (d fakeDocument) ElementByID(id string) (toast.Element, bool) {
	el, ok := d[id]
	if !ok {
		return nil, false
	}
	return el, true
}

type fakeWidget struct {
	container *fakeElement
	opts      toast.Options
	shown     int
}

func (w *fakeWidget) Show() { w.shown++ }

// fakeFactory remembers every widget it built.
type fakeFactory struct {
	widgets []*fakeWidget
	err     error
}

func (f *fakeFactory) NewWidget(container toast.Element, opts toast.Options) (toast.Widget, error) {
	if f.err != nil {
		return nil, f.err
	}
	w := &fakeWidget{container: container.(*fakeElement), opts: opts}
	f.widgets = append(f.widgets, w)
	return w, nil
}

type fakePresenter struct {
	messages []string
}

func (p *fakePresenter) Present(message string) { p.messages = append(p.messages, message) }

type fakeObserver struct {
	shown     []toast.Level
	fallbacks []toast.Reason
}

func (o *fakeObserver) Shown(level toast.Level) { o.shown = append(o.shown, level) }
func (o *fakeObserver) Fallback(level toast.Level, reason toast.Reason) {
	o.fallbacks = append(o.fallbacks, reason)
}

type harness struct {
	doc      fakeDocument
	factory  *fakeFactory
	fallback *fakePresenter
	observer *fakeObserver
	logs     *bytes.Buffer
	notifier *toast.Notifier
}

func newHarness(withWidgets bool, ids ...string) *harness {
	h := &harness{
		doc:      newFakeDocument(ids...),
		factory:  &fakeFactory{},
		fallback: &fakePresenter{},
		observer: &fakeObserver{},
		logs:     &bytes.Buffer{},
	}
	cfg := &toast.Config{
		Document: h.doc,
		Fallback: h.fallback,
		Observer: h.observer,
		Logger:   zerolog.New(h.logs),
	}
	if withWidgets {
		cfg.Widgets = h.factory
	}
	h.notifier = toast.New(cfg)
	return h
}

var allIDs = []string{"toastMessage", "successToast", "errorMessage", "errorToast"}

func TestNotify_SuccessShowsWidget(t *testing.T) {
	h := newHarness(true, allIDs...)

	h.notifier.Notify("Saved successfully")

	assert.Equal(t, "Saved successfully", h.doc["toastMessage"].text)
	assert.Empty(t, h.doc["errorMessage"].text)

	require.Len(t, h.factory.widgets, 1)
	w := h.factory.widgets[0]
	assert.Equal(t, "successToast", w.container.id)
	assert.Equal(t, 1, w.shown)
	assert.Equal(t, map[string]any{"animation": true, "autohide": true, "delay": int64(3000)}, w.opts.Map())

	assert.Empty(t, h.fallback.messages, "fallback must not run when the widget is shown")
	assert.Empty(t, h.logs.String())
	assert.Equal(t, []toast.Level{toast.LevelSuccess}, h.observer.shown)
}

func TestNotify_ErrorUsesErrorSurface(t *testing.T) {
	h := newHarness(true, allIDs...)

	h.notifier.Notify("Save failed", false)

	assert.Equal(t, "Save failed", h.doc["errorMessage"].text)
	assert.Empty(t, h.doc["toastMessage"].text)
	require.Len(t, h.factory.widgets, 1)
	assert.Equal(t, "errorToast", h.factory.widgets[0].container.id)
	assert.Empty(t, h.fallback.messages)
}

func TestNotify_ExplicitTrueMatchesDefault(t *testing.T) {
	h := newHarness(true, allIDs...)

	h.notifier.Notify("ok", true)

	assert.Equal(t, "ok", h.doc["toastMessage"].text)
	assert.Equal(t, "successToast", h.factory.widgets[0].container.id)
}

func TestNotify_NoWidgetFallsBack(t *testing.T) {
	h := newHarness(false, allIDs...)

	h.notifier.Notify("Save failed", false)

	assert.Equal(t, "Save failed", h.doc["errorMessage"].text)
	assert.Equal(t, []string{"Save failed"}, h.fallback.messages)
	assert.Contains(t, h.logs.String(), `"level":"error"`)
	assert.Contains(t, h.logs.String(), string(toast.ReasonNoWidget))
	assert.Equal(t, []toast.Reason{toast.ReasonNoWidget}, h.observer.fallbacks)
}

func TestNotify_MissingContainerFallsBack(t *testing.T) {
	for _, withWidgets := range []bool{true, false} {
		h := newHarness(withWidgets, "toastMessage")

		h.notifier.Notify("hello")

		assert.Equal(t, "hello", h.doc["toastMessage"].text)
		assert.Equal(t, []string{"hello"}, h.fallback.messages)
		assert.Empty(t, h.factory.widgets)
		assert.NotEmpty(t, h.logs.String())
	}
}

func TestNotify_MissingMessageElementStillShowsWidget(t *testing.T) {
	h := newHarness(true, "successToast")

	h.notifier.Notify("no span")

	require.Len(t, h.factory.widgets, 1)
	assert.Equal(t, 1, h.factory.widgets[0].shown)
	assert.Empty(t, h.fallback.messages)
}

func TestNotify_TextIsNotInterpreted(t *testing.T) {
	h := newHarness(true, allIDs...)

	msg := `<img src=x onerror="alert(1)">`
	h.notifier.Notify(msg)

	assert.Equal(t, msg, h.doc["toastMessage"].text)
}

func TestNotify_LastWriteWins(t *testing.T) {
	h := newHarness(true, allIDs...)

	h.notifier.Notify("first")
	h.notifier.Notify("second")

	assert.Equal(t, "second", h.doc["toastMessage"].text)
	assert.Len(t, h.factory.widgets, 2)
}

func TestShow_WidgetErrorFallsBack(t *testing.T) {
	h := newHarness(true, allIDs...)
	h.factory.err = errors.New("bootstrap.Toast is not a constructor")

	h.notifier.Error("boom")

	assert.Equal(t, []string{"boom"}, h.fallback.messages)
	assert.Contains(t, h.logs.String(), "bootstrap.Toast is not a constructor")
	assert.Equal(t, []toast.Reason{toast.ReasonWidgetError}, h.observer.fallbacks)
}

func TestShow_PanickingWidgetIsRecovered(t *testing.T) {
	fallback := &fakePresenter{}
	n := toast.New(&toast.Config{
		Document: newFakeDocument(allIDs...),
		Widgets: toast.WidgetFactoryFunc(func(toast.Element, toast.Options) (toast.Widget, error) {
			panic("widget exploded")
		}),
		Fallback: fallback,
	})

	assert.NotPanics(t, func() { n.Success("still here") })
	assert.Equal(t, []string{"still here"}, fallback.messages)
}

func TestShow_PanickingFallbackIsSwallowed(t *testing.T) {
	n := toast.New(&toast.Config{
		Fallback: toast.PresenterFunc(func(string) { panic("alert is not defined") }),
	})

	assert.NotPanics(t, func() { n.Notify("x") })
}

func TestShow_UnmappedLevelFallsBack(t *testing.T) {
	h := newHarness(true, allIDs...)

	h.notifier.Show(toast.Level("warning"), "careful")

	assert.Equal(t, []string{"careful"}, h.fallback.messages)
	assert.Empty(t, h.factory.widgets)
	assert.Equal(t, []toast.Reason{toast.ReasonUnmapped}, h.observer.fallbacks)
}

func TestNew_NilConfigNeverPanics(t *testing.T) {
	n := toast.New(nil)
	assert.NotPanics(t, func() { n.Notify("nobody listens") })
}

func TestNew_CustomTargetsAndOptions(t *testing.T) {
	doc := newFakeDocument("msg", "box")
	factory := &fakeFactory{}
	n := toast.New(&toast.Config{
		Document: doc,
		Widgets:  factory,
		Targets:  toast.Targets{toast.LevelSuccess: {MessageID: "msg", ContainerID: "box"}},
		Options:  toast.Options{Animation: false, Autohide: true, Delay: 500 * time.Millisecond},
	})

	n.Notify("custom")

	assert.Equal(t, "custom", doc["msg"].text)
	require.Len(t, factory.widgets, 1)
	assert.Equal(t, "box", factory.widgets[0].container.id)
	assert.Equal(t, int64(500), factory.widgets[0].opts.Map()["delay"])
	assert.Equal(t, false, factory.widgets[0].opts.Map()["animation"])
}

// panickyObserver panics from the hooks selected by its flags.
type panickyObserver struct {
	fakeObserver
	onShown    bool
	onFallback bool
}

func (o *panickyObserver) Shown(level toast.Level) {
	o.fakeObserver.Shown(level)
	if o.onShown {
		panic("observer exploded")
	}
}

func (o *panickyObserver) Fallback(level toast.Level, reason toast.Reason) {
	o.fakeObserver.Fallback(level, reason)
	if o.onFallback {
		panic("observer exploded")
	}
}

func TestShow_PanickingShownObserverDoesNotFallBack(t *testing.T) {
	doc := newFakeDocument(allIDs...)
	factory := &fakeFactory{}
	fallback := &fakePresenter{}
	obs := &panickyObserver{onShown: true}
	var logs bytes.Buffer
	n := toast.New(&toast.Config{
		Document: doc,
		Widgets:  factory,
		Fallback: fallback,
		Observer: obs,
		Logger:   zerolog.New(&logs),
	})

	assert.NotPanics(t, func() { n.Notify("Saved successfully") })

	require.Len(t, factory.widgets, 1)
	assert.Equal(t, 1, factory.widgets[0].shown)
	assert.Empty(t, fallback.messages, "a shown toast must not also raise the fallback")
	assert.Empty(t, obs.fallbacks)
	assert.Contains(t, logs.String(), "observer exploded")
}

func TestShow_PanickingPresenterStillCountsFallback(t *testing.T) {
	obs := &fakeObserver{}
	n := toast.New(&toast.Config{
		Fallback: toast.PresenterFunc(func(string) { panic("alert is not defined") }),
		Observer: obs,
	})

	assert.NotPanics(t, func() { n.Notify("x") })
	assert.Equal(t, []toast.Reason{toast.ReasonNoWidget}, obs.fallbacks)
}

func TestShow_PanickingFallbackObserverStillPresents(t *testing.T) {
	fallback := &fakePresenter{}
	n := toast.New(&toast.Config{
		Fallback: fallback,
		Observer: &panickyObserver{onFallback: true},
	})

	assert.NotPanics(t, func() { n.Notify("x") })
	assert.Equal(t, []string{"x"}, fallback.messages)
}

func TestShow_LazyFactoryUnavailableCountsAsNoWidget(t *testing.T) {
	h := newHarness(true, allIDs...)
	h.factory.err = toast.ErrWidgetUnavailable

	h.notifier.Notify("later")

	assert.Equal(t, []string{"later"}, h.fallback.messages)
	assert.Equal(t, []toast.Reason{toast.ReasonNoWidget}, h.observer.fallbacks)
}
