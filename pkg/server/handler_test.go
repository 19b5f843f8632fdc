package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

func get(t *testing.T, url string, header http.Header) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s error = %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestIndexListsPreviews(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, body := get(t, ts.URL+"/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, link := range []string{`href="/previews/button"`, `href="/previews/select"`, `href="/previews/switch"`} {
		if !strings.Contains(body, link) {
			t.Errorf("index missing %s", link)
		}
	}
	if got := resp.Header.Get("Accept-CH"); got != "Sec-CH-Prefers-Color-Scheme" {
		t.Errorf("Accept-CH = %q", got)
	}
}

func TestPreviewPage(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, body := get(t, ts.URL+"/previews/button", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	checks := []string{
		"<!DOCTYPE html>",
		`<html lang="es">`,
		"<title>Button | COSMOS</title>",
		`data-cosmos-preview="true"`,
		`data-ws="/previews/button/ws"`,
		`src="/_cosmos/client.js"`,
		`href="/_cosmos/theme.css"`,
		`class="cosmos-preview"`,
	}
	for _, want := range checks {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %s", want)
		}
	}
}

func TestPreviewPageFollowsScheme(t *testing.T) {
	_, ts := newTestServer(t, nil)
	dark := http.Header{"Sec-Ch-Prefers-Color-Scheme": []string{`"dark"`}}

	_, body := get(t, ts.URL+"/previews/switch", dark)
	if !strings.Contains(body, `<body class="galaxy-theme-dark">`) {
		t.Error("page should use the dark theme")
	}
	if !strings.Contains(body, `class="cosmos-mount galaxy-theme-dark"`) {
		t.Error("switch follows the reader's scheme")
	}

	_, body = get(t, ts.URL+"/previews/button", dark)
	if !strings.Contains(body, `class="cosmos-mount galaxy-theme-light"`) {
		t.Error("button always renders light")
	}
}

func TestPreviewEmbed(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, body := get(t, ts.URL+"/previews/select/embed", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.HasPrefix(body, `<div class="cosmos-mount galaxy-theme-light"`) {
		t.Errorf("embed = %s", body)
	}
	if strings.Contains(body, "<html") {
		t.Error("embed should be a fragment")
	}
}

func TestPreviewCode(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, body := get(t, ts.URL+"/previews/button/code?size=large&disabled=true&bogus=1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	want := `<Button variant="contained" color="primary" size="large" disabled>Button</Button>`
	if body != want {
		t.Errorf("code = %q, want %q", body, want)
	}

	_, body = get(t, ts.URL+"/previews/button/code?format=highlight", nil)
	if !strings.HasPrefix(body, `&lt;Button <span class="attr-name">variant</span>=&quot;contained&quot;`) {
		t.Errorf("highlighted = %s", body)
	}
}

func TestUnknownPreview(t *testing.T) {
	_, ts := newTestServer(t, nil)

	for _, path := range []string{"/previews/nope", "/previews/nope/embed", "/previews/nope/code"} {
		resp, _ := get(t, ts.URL+path, nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, resp.StatusCode)
		}
	}
}

func TestThinClientCaching(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, body := get(t, ts.URL+ClientPath, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/javascript; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(body, "data-cosmos-preview") {
		t.Error("client should look for preview mounts")
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "public, max-age=0, must-revalidate" {
		t.Errorf("Cache-Control = %q", cc)
	}

	etag := resp.Header.Get("ETag")
	resp, _ = get(t, ts.URL+ClientPath, http.Header{"If-None-Match": []string{`W/` + etag}})
	if resp.StatusCode != http.StatusNotModified {
		t.Errorf("status = %d, want 304", resp.StatusCode)
	}
}

func TestThinClientDevModeNoStore(t *testing.T) {
	_, ts := newTestServer(t, func(c *ServerConfig) { c.DevMode = true })

	resp, _ := get(t, ts.URL+ClientPath, nil)
	if cc := resp.Header.Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}
}

func TestStylesheet(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, body := get(t, ts.URL+StylesheetPath, nil)
	if ct := resp.Header.Get("Content-Type"); ct != "text/css; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	for _, want := range []string{".galaxy-theme-light{", ".galaxy-theme-dark{", ".attr-name"} {
		if !strings.Contains(body, want) {
			t.Errorf("stylesheet missing %s", want)
		}
	}
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, body := get(t, ts.URL+"/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var payload struct {
		Status   string       `json:"status"`
		Sessions ManagerStats `json:"sessions"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Status != "ok" || payload.Sessions.Active != 0 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	called := false
	_, ts := newTestServer(t, func(c *ServerConfig) {
		c.MetricsPath = "/internal/metrics"
		c.MetricsHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			called = true
			_, _ = io.WriteString(w, "# metrics\n")
		})
	})

	resp, _ := get(t, ts.URL+"/internal/metrics", nil)
	if resp.StatusCode != http.StatusOK || !called {
		t.Errorf("metrics handler not served: status %d", resp.StatusCode)
	}
}

func TestValidateConfig(t *testing.T) {
	c := DefaultServerConfig()
	if err := c.ValidateConfig(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	c.Address = ""
	c.MetricsPath = "metrics"
	c.MaxSessions = -1
	err := c.ValidateConfig()
	if err == nil {
		t.Fatal("ValidateConfig() should fail")
	}
	for _, want := range []string{"address", "metrics path", "max sessions"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}
