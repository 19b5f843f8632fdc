package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T, mutate func(*ServerConfig)) (*Server, *httptest.Server) {
	t.Helper()

	config := DefaultServerConfig()
	config.CheckOrigin = func(*http.Request) bool { return true }
	config.SessionConfig.HeartbeatInterval = time.Hour
	if mutate != nil {
		mutate(config)
	}

	srv := New(config)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		_ = srv.Sessions().Shutdown(context.Background())
		ts.Close()
	})
	return srv, ts
}

// serverMessage is the union of every server to client message.
type serverMessage struct {
	Type    string         `json:"type"`
	Target  string         `json:"target"`
	HTML    string         `json:"html"`
	Seq     uint64         `json:"seq"`
	Text    string         `json:"text"`
	Name    string         `json:"name"`
	Detail  map[string]any `json:"detail"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Fatal   bool           `json:"fatal"`
}

func dial(t *testing.T, ts *httptest.Server, preview, target string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/previews/" + preview + "/ws?target=" + target
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		t.Fatalf("Dial(%s) error = %v (status %d)", url, err, status)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) serverMessage {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	var msg serverMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Unmarshal(%s) error = %v", data, err)
	}
	return msg
}

func send(t *testing.T, conn *websocket.Conn, msg map[string]any) {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
}

func sendEvent(t *testing.T, conn *websocket.Conn, hid, event string, seq uint64) {
	t.Helper()
	send(t, conn, map[string]any{"type": "event", "hid": hid, "event": event, "seq": seq})
}

// hidOf returns the data-hid of the first element whose attributes match
// pattern.
func hidOf(t *testing.T, html, pattern string) string {
	t.Helper()
	re := regexp.MustCompile(pattern + `[^>]*data-hid="(h\d+)"`)
	m := re.FindStringSubmatch(html)
	if m == nil {
		t.Fatalf("no element matching %q in %s", pattern, html)
	}
	return m[1]
}

// expectPong sends a ping and asserts that the next message is the pong,
// proving that nothing else was queued before it.
func expectPong(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	send(t, conn, map[string]any{"type": "ping"})
	if msg := readMessage(t, conn); msg.Type != "pong" {
		t.Fatalf("message = %+v, want pong", msg)
	}
}
