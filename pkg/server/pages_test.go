package server

import (
	"strings"
	"testing"

	"github.com/cosmos-docs/livepreview/pkg/previews"
	"github.com/cosmos-docs/livepreview/pkg/theme"
)

func TestWriteIndexGroups(t *testing.T) {
	var buf strings.Builder
	opts := PageOptions{
		Groups: []IndexGroup{
			{Title: "Inputs", Previews: []string{"switch", "select", "missing"}},
		},
	}
	if err := WriteIndex(&buf, previews.All(), theme.Light, opts); err != nil {
		t.Fatalf("WriteIndex() error = %v", err)
	}
	html := buf.String()

	inputs := strings.Index(html, "<h2>Inputs</h2>")
	other := strings.Index(html, "<h2>Other</h2>")
	if inputs < 0 || other < 0 || inputs > other {
		t.Fatalf("groups out of order in %s", html)
	}
	sw := strings.Index(html, `href="/previews/switch"`)
	sel := strings.Index(html, `href="/previews/select"`)
	btn := strings.Index(html, `href="/previews/button"`)
	if !(inputs < sw && sw < sel && sel < other && other < btn) {
		t.Errorf("previews not placed in their groups: %s", html)
	}
	if strings.Contains(html, "missing") {
		t.Error("unknown preview name rendered")
	}
}

func TestWriteIndexWithoutGroups(t *testing.T) {
	var buf strings.Builder
	if err := WriteIndex(&buf, previews.All(), theme.Dark, PageOptions{}); err != nil {
		t.Fatalf("WriteIndex() error = %v", err)
	}
	html := buf.String()
	if strings.Contains(html, "<h2>") {
		t.Error("ungrouped index should have no section headings")
	}
	if !strings.Contains(html, "galaxy-theme-dark") {
		t.Error("body missing dark theme class")
	}
}

func TestCodeOverrides(t *testing.T) {
	code, err := Code(previews.ButtonPreview, map[string]string{"variant": "outlined", "unknown": "x"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(code, `variant="outlined"`) {
		t.Errorf("Code() = %q", code)
	}
}
