package middleware

import (
	"context"
	"log/slog"
	"time"
)

// Event is one client event on its way to a handler.
type Event struct {
	// Context is the session context. Middleware may replace it.
	Context context.Context

	SessionID string
	Preview   string

	// HID is the hydration id of the target element.
	HID string

	// DOMEvent is the DOM event name ("click", "change").
	DOMEvent string

	// Meta carries the labels the element declared for its handler, such as
	// action, control and value.
	Meta map[string]string
}

// Action returns the declared action, or "event" when none was declared.
func (e *Event) Action() string {
	if a := e.Meta["action"]; a != "" {
		return a
	}
	return "event"
}

// Control returns the control name of a selection event.
func (e *Event) Control() string {
	return e.Meta["control"]
}

// Handler processes an event.
type Handler func(ev *Event) error

// Middleware wraps a Handler.
type Middleware func(next Handler) Handler

// Chain composes middleware so that the first one is the outermost.
func Chain(mws ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				next = mws[i](next)
			}
		}
		return next
	}
}

// Logging logs every event at debug level and failures at warn level.
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "events")

	return func(next Handler) Handler {
		return func(ev *Event) error {
			start := time.Now()
			err := next(ev)
			attrs := []any{
				"session_id", ev.SessionID,
				"preview", ev.Preview,
				"action", ev.Action(),
				"hid", ev.HID,
				"duration", time.Since(start),
			}
			if err != nil {
				logger.Warn("event failed", append(attrs, "error", err)...)
				return err
			}
			logger.Debug("event handled", attrs...)
			return nil
		}
	}
}
