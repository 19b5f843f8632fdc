package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cosmos-docs/livepreview/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Body:        vdom.Main(vdom.H1("Button")),
		Title:       "Button <preview>",
		Lang:        "es",
		BodyClass:   "theme-dark",
		Meta:        []MetaTag{{Name: "color-scheme", Content: "dark light"}},
		StyleSheets: []string{"/_cosmos/theme.css"},
		Styles:      []string{":root{--x:1}"},
		Scripts: []ScriptTag{
			{Src: "/_cosmos/client.js", Defer: true, Attrs: map[string]string{"data-ws": "/ws", "data-root": "p1"}},
			{Inline: "window.x=1;"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	checks := []string{
		"<!DOCTYPE html>\n",
		`<html lang="es">`,
		"<title>Button &lt;preview&gt;</title>",
		`<meta name="color-scheme" content="dark light">`,
		`<link rel="stylesheet" href="/_cosmos/theme.css">`,
		"<style>:root{--x:1}</style>",
		`<body class="theme-dark">`,
		"<main><h1>Button</h1></main>",
		`<script src="/_cosmos/client.js" data-root="p1" data-ws="/ws" defer></script>`,
		"<script>window.x=1;</script>",
		"</body>\n</html>\n",
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q\n%s", want, html)
		}
	}
}

func TestRenderPageDefaultLang(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, PageData{Body: vdom.Div()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `<html lang="en">`) {
		t.Errorf("expected default lang, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "<body>\n") {
		t.Errorf("expected bare body tag, got %q", buf.String())
	}
}
