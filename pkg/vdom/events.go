package vdom

// EventHandler binds a DOM event to a host-side closure.
type EventHandler struct {
	// Event is the attribute name, e.g. "onclick".
	Event string

	// Handler runs on the host when the client reports the event.
	Handler func()

	// Meta carries descriptive labels (action, control, value) for logs,
	// metrics and traces. It has no effect on dispatch.
	Meta map[string]string
}

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
// meta is a flat list of key/value pairs; a trailing odd key is dropped.
func event(name string, handler func(), meta []string) EventHandler {
	h := EventHandler{Event: "on" + name, Handler: handler}
	if len(meta) >= 2 {
		h.Meta = make(map[string]string, len(meta)/2)
		for i := 0; i+1 < len(meta); i += 2 {
			h.Meta[meta[i]] = meta[i+1]
		}
	}
	return h
}

// On handles an arbitrary DOM event.
func On(name string, handler func(), meta ...string) EventHandler {
	return event(name, handler, meta)
}

// OnClick handles click events.
func OnClick(handler func(), meta ...string) EventHandler { return event("click", handler, meta) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler func(), meta ...string) EventHandler { return event("change", handler, meta) }
