package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newEvent(action string, meta ...string) *Event {
	m := map[string]string{}
	if action != "" {
		m["action"] = action
	}
	for i := 0; i+1 < len(meta); i += 2 {
		m[meta[i]] = meta[i+1]
	}
	return &Event{
		Context:   context.Background(),
		SessionID: "sess-1",
		Preview:   "button",
		HID:       "h1",
		DOMEvent:  "click",
		Meta:      m,
	}
}

func TestEventAction(t *testing.T) {
	if got := newEvent("").Action(); got != "event" {
		t.Errorf("Action() = %q, want event", got)
	}
	ev := newEvent("select", "control", "size")
	if ev.Action() != "select" || ev.Control() != "size" {
		t.Errorf("Action/Control = %q/%q", ev.Action(), ev.Control())
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ev *Event) error {
				order = append(order, name+">")
				err := next(ev)
				order = append(order, "<"+name)
				return err
			}
		}
	}

	h := Chain(mark("a"), nil, mark("b"))(func(*Event) error {
		order = append(order, "handler")
		return nil
	})
	if err := h(newEvent("copy")); err != nil {
		t.Fatal(err)
	}

	want := "a> b> handler <b <a"
	if got := strings.Join(order, " "); got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestChainEmpty(t *testing.T) {
	called := false
	h := Chain()(func(*Event) error { called = true; return nil })
	_ = h(newEvent("copy"))
	if !called {
		t.Error("empty chain should call the handler")
	}
}

func TestLogging(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h := Logging(logger)(func(*Event) error { return nil })
	_ = h(newEvent("toggle-code"))
	if !strings.Contains(buf.String(), "event handled") || !strings.Contains(buf.String(), "action=toggle-code") {
		t.Errorf("unexpected log output: %s", buf.String())
	}

	buf.Reset()
	wantErr := errors.New("boom")
	h = Logging(logger)(func(*Event) error { return wantErr })
	if err := h(newEvent("copy")); !errors.Is(err, wantErr) {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(buf.String(), "event failed") || !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}
