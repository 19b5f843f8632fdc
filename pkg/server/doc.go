// Package server hosts live previews over HTTP and WebSocket.
//
// Every preview is reachable as a standalone page, as an embeddable
// fragment and as raw emitted code. A page carries a server-rendered copy of
// the widget plus the thin client, which opens one WebSocket session per
// widget.
//
// # Session Lifecycle
//
// Each WebSocket connection creates a Session that mounts one harness. One
// goroutine decodes frames into a bounded queue, a second drains the queue
// through the event middleware chain and re-renders, and a third sends
// heartbeat pings.
//
// # Event Processing
//
// The widget is rendered with data-hid markers on interactive elements and
// the handlers of the last render are kept by the session. When the client
// sends an event:
//  1. Events carrying a sequence older than the last patch are dropped
//  2. The handler is found by HID and event name
//  3. The handler runs inside the middleware chain with panic recovery
//  4. If any signal read by the last render changed, the whole widget is
//     rendered again and sent as a single patch
//
// # Clipboard
//
// The session is the harness clipboard: a copy request is forwarded to the
// client, which answers with a copy-result message once the browser settles
// the write. Results are logged and counted; they never change the widget.
package server
