package server

import (
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

const target = "cp-test1"

func TestSessionSendsInitialPatch(t *testing.T) {
	_, ts := newTestServer(t, nil)
	conn := dial(t, ts, "button", target)

	msg := readMessage(t, conn)
	if msg.Type != "patch" {
		t.Fatalf("Type = %q, want patch", msg.Type)
	}
	if msg.Target != target {
		t.Errorf("Target = %q, want %q", msg.Target, target)
	}
	if msg.Seq != 1 {
		t.Errorf("Seq = %d, want 1", msg.Seq)
	}
	if !strings.HasPrefix(msg.HTML, `<div class="cosmos-preview" id="cp-test1">`) {
		t.Errorf("HTML = %s, want widget root", msg.HTML)
	}
	if !strings.Contains(msg.HTML, `id="cp-test1-code"`) {
		t.Error("code panel should be visible initially")
	}
	if !strings.Contains(msg.HTML, `id="cp-test1-controls"`) {
		t.Error("controls panel should be visible initially")
	}
}

func TestSessionSelectOptionPatchesWidget(t *testing.T) {
	_, ts := newTestServer(t, nil)
	conn := dial(t, ts, "button", target)
	initial := readMessage(t, conn)

	hid := hidOf(t, initial.HTML, `<input name="cp-test1-size" type="radio" value="large"`)
	sendEvent(t, conn, hid, "change", initial.Seq)

	msg := readMessage(t, conn)
	if msg.Type != "patch" || msg.Seq != 2 {
		t.Fatalf("message = %+v, want patch seq 2", msg)
	}
	if !strings.Contains(msg.HTML, `<input checked name="cp-test1-size" type="radio" value="large"`) {
		t.Error("large should be checked after selection")
	}
	if !strings.Contains(msg.HTML, `galaxy-button--large`) {
		t.Error("example should render the large size")
	}
	if !strings.Contains(msg.HTML, `<span class="attr-name">size</span>=&quot;large&quot;`) {
		t.Errorf("code panel should show size=\"large\": %s", msg.HTML)
	}
	// Other controls keep their value.
	if !strings.Contains(msg.HTML, `<input checked name="cp-test1-variant" type="radio" value="contained"`) {
		t.Error("variant should keep its default")
	}
}

func TestSessionToggleCodePanel(t *testing.T) {
	_, ts := newTestServer(t, nil)
	conn := dial(t, ts, "button", target)
	initial := readMessage(t, conn)

	hid := hidOf(t, initial.HTML, `<button aria-controls="cp-test1-code"`)
	sendEvent(t, conn, hid, "click", initial.Seq)

	msg := readMessage(t, conn)
	if strings.Contains(msg.HTML, `id="cp-test1-code"`) {
		t.Error("code panel should be hidden after toggle")
	}
	if !strings.Contains(msg.HTML, "Mostrar código") {
		t.Error("toggle label should offer to show the code")
	}

	hid = hidOf(t, msg.HTML, `<button aria-controls="cp-test1-code"`)
	sendEvent(t, conn, hid, "click", msg.Seq)

	msg = readMessage(t, conn)
	if !strings.Contains(msg.HTML, `id="cp-test1-code"`) {
		t.Error("code panel should be visible after second toggle")
	}
}

func TestSessionDropsStaleEvents(t *testing.T) {
	_, ts := newTestServer(t, nil)
	conn := dial(t, ts, "button", target)
	initial := readMessage(t, conn)

	hid := hidOf(t, initial.HTML, `<button aria-controls="cp-test1-controls"`)
	sendEvent(t, conn, hid, "click", initial.Seq)
	if msg := readMessage(t, conn); msg.Seq != 2 {
		t.Fatalf("Seq = %d, want 2", msg.Seq)
	}

	// Rendered before patch 2: the handler table it refers to is gone.
	sendEvent(t, conn, hid, "click", initial.Seq)
	expectPong(t, conn)
}

func TestSessionCopyCode(t *testing.T) {
	_, ts := newTestServer(t, nil)
	conn := dial(t, ts, "button", target)
	initial := readMessage(t, conn)

	hid := hidOf(t, initial.HTML, `<button type="button"`)
	sendEvent(t, conn, hid, "click", initial.Seq)

	msg := readMessage(t, conn)
	if msg.Type != "clipboard" {
		t.Fatalf("Type = %q, want clipboard", msg.Type)
	}
	want := `<Button variant="contained" color="primary" size="medium">Button</Button>`
	if msg.Text != want {
		t.Errorf("Text = %q, want %q", msg.Text, want)
	}

	msg = readMessage(t, conn)
	if msg.Type != "event" || msg.Name != "cosmos:toast" {
		t.Fatalf("message = %+v, want toast event", msg)
	}
	if msg.Detail["message"] != "Código copiado al portapapeles" {
		t.Errorf("toast message = %v", msg.Detail["message"])
	}
	if msg.Detail["level"] != "success" {
		t.Errorf("toast level = %v, want success", msg.Detail["level"])
	}

	// Copying changes no state, and results never produce a message.
	send(t, conn, map[string]any{"type": "copy-result", "ok": false, "error": "NotAllowedError"})
	expectPong(t, conn)
}

func TestSessionLocalElementState(t *testing.T) {
	_, ts := newTestServer(t, nil)
	conn := dial(t, ts, "switch", target)
	initial := readMessage(t, conn)

	if !strings.Contains(initial.HTML, "galaxy-switch--checked") {
		t.Fatal("switch should start checked")
	}
	hid := hidOf(t, initial.HTML, `<button aria-checked="true"`)
	sendEvent(t, conn, hid, "click", initial.Seq)

	msg := readMessage(t, conn)
	if msg.Type != "patch" {
		t.Fatalf("Type = %q, want patch", msg.Type)
	}
	if strings.Contains(msg.HTML, "galaxy-switch--checked") {
		t.Error("switch should be unchecked after click")
	}
}

func TestSessionUnknownHandler(t *testing.T) {
	_, ts := newTestServer(t, nil)
	conn := dial(t, ts, "button", target)
	initial := readMessage(t, conn)

	sendEvent(t, conn, "h999", "click", initial.Seq)

	msg := readMessage(t, conn)
	if msg.Type != "error" || msg.Code != "HandlerNotFound" {
		t.Fatalf("message = %+v, want HandlerNotFound error", msg)
	}
	if msg.Fatal {
		t.Error("unknown handler should not be fatal")
	}
}

func TestSessionInvalidMessage(t *testing.T) {
	_, ts := newTestServer(t, nil)
	conn := dial(t, ts, "button", target)
	readMessage(t, conn)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatal(err)
	}
	msg := readMessage(t, conn)
	if msg.Type != "error" || msg.Code != "InvalidMessage" {
		t.Fatalf("message = %+v, want InvalidMessage error", msg)
	}

	// The session survives.
	expectPong(t, conn)
}

func TestWebSocketRejectsInvalidTarget(t *testing.T) {
	_, ts := newTestServer(t, nil)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/previews/button/ws?target=<script>"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("Dial() should fail for an invalid target")
	}
	if resp == nil || resp.StatusCode != 400 {
		t.Fatalf("response = %v, want 400", resp)
	}
}

func TestWebSocketUnknownPreview(t *testing.T) {
	_, ts := newTestServer(t, nil)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/previews/nope/ws?target=" + target
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("Dial() should fail for an unknown preview")
	}
	if resp == nil || resp.StatusCode != 404 {
		t.Fatalf("response = %v, want 404", resp)
	}
}

func TestMaxSessions(t *testing.T) {
	srv, ts := newTestServer(t, func(c *ServerConfig) { c.MaxSessions = 1 })

	first := dial(t, ts, "button", target)
	readMessage(t, first)

	second := dial(t, ts, "button", "cp-test2")
	msg := readMessage(t, second)
	if msg.Type != "error" || !msg.Fatal {
		t.Fatalf("message = %+v, want fatal error", msg)
	}
	if got := srv.Sessions().Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}

func TestSessionRemovedOnDisconnect(t *testing.T) {
	srv, ts := newTestServer(t, nil)
	conn := dial(t, ts, "button", target)
	readMessage(t, conn)

	if got := srv.Sessions().Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}
	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for srv.Sessions().Count() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("session not removed after disconnect")
		}
		time.Sleep(10 * time.Millisecond)
	}
	stats := srv.Sessions().Stats()
	if stats.TotalCreated != 1 || stats.TotalClosed != 1 || stats.Peak != 1 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestValidTarget(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"cp-1a2b3c4d", true},
		{"cp-test-2", true},
		{"cp-", false},
		{"preview", false},
		{`cp-"><script>`, false},
		{"cp-" + strings.Repeat("a", 41), false},
	}
	for _, tt := range tests {
		if got := ValidTarget(tt.id); got != tt.want {
			t.Errorf("ValidTarget(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
