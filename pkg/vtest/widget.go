package vtest

import (
	"regexp"
	"testing"

	"github.com/cosmos-docs/livepreview/pkg/preview"
	"github.com/cosmos-docs/livepreview/pkg/render"
)

// Widget drives a mounted harness through its rendered markup.
type Widget struct {
	t    testing.TB
	h    *preview.Harness
	r    *render.Renderer
	html string
}

// Mount wraps h and renders it once. h is disposed when the test ends.
func Mount(t testing.TB, h *preview.Harness) *Widget {
	t.Helper()
	t.Cleanup(h.Dispose)

	w := &Widget{t: t, h: h, r: render.NewRenderer(render.RendererConfig{})}
	w.Render()
	return w
}

// Harness returns the wrapped harness.
func (w *Widget) Harness() *preview.Harness { return w.h }

// HTML returns the markup of the last render.
func (w *Widget) HTML() string { return w.html }

// Render re-renders the widget and replaces the handler table, as a live
// session does after every state change.
func (w *Widget) Render() string {
	w.t.Helper()
	w.r.Reset()
	html, err := w.r.RenderToString(w.h.View())
	if err != nil {
		w.t.Fatalf("render widget: %v", err)
	}
	w.html = html
	return html
}

// HID returns the hydration id of the first element of the last render
// whose opening tag matches pattern. The test fails when none does.
func (w *Widget) HID(pattern string) string {
	w.t.Helper()
	re, err := regexp.Compile(`<[^>]*` + pattern + `[^>]*data-hid="([^"]+)"`)
	if err != nil {
		w.t.Fatalf("bad pattern %q: %v", pattern, err)
	}
	m := re.FindStringSubmatch(w.html)
	if m == nil {
		w.t.Fatalf("no interactive element matches %q in:\n%s", pattern, clip(w.html))
	}
	return m[1]
}

// Dispatch runs the handler for event on hid and re-renders.
func (w *Widget) Dispatch(hid, event string) {
	w.t.Helper()
	handler, ok := w.r.Handler(hid, event)
	if !ok {
		w.t.Fatalf("no %s handler for %s", event, hid)
	}
	handler.Handler()
	w.Render()
}

// Click dispatches a click on the element matching pattern.
func (w *Widget) Click(pattern string) {
	w.t.Helper()
	w.Dispatch(w.HID(pattern), "click")
}

// Change dispatches a change on the element matching pattern.
func (w *Widget) Change(pattern string) {
	w.t.Helper()
	w.Dispatch(w.HID(pattern), "change")
}

// Select picks value in the radio group of control.
func (w *Widget) Select(control, value string) {
	w.t.Helper()
	w.Change(`name="` + regexp.QuoteMeta(w.h.ID()+"-"+control) + `"[^>]*value="` + regexp.QuoteMeta(value) + `"`)
}
