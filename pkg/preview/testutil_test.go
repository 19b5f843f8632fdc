package preview

import (
	"context"
	"fmt"
	"sync"

	"github.com/cosmos-docs/livepreview/pkg/render"
	"github.com/cosmos-docs/livepreview/pkg/vdom"
)

var buttonControls = []Control{
	{Label: "Variante", Name: "variant", Options: []ControlOption{
		{Label: "Contained", Value: "contained"},
		{Label: "Outlined", Value: "outlined"},
		{Label: "Text", Value: "text"},
	}},
	{Label: "Color", Name: "color", Options: []ControlOption{
		{Label: "Primario", Value: "primary"},
		{Label: "Secundario", Value: "secondary"},
	}},
	{Label: "Tamaño", Name: "size", Options: []ControlOption{
		{Label: "Medio", Value: "medium"},
		{Label: "Pequeño", Value: "small"},
	}},
}

var buttonRenderer = Funcs{
	Preview: func(sel Selection) *vdom.VNode {
		return vdom.Button(
			vdom.Class("galaxy-button", "galaxy-button--"+sel["variant"]),
			vdom.Data("color", sel["color"]),
			vdom.Data("size", sel["size"]),
			"Button",
		)
	},
	Code: func(sel Selection) string {
		return fmt.Sprintf(`<Button variant="%s" color="%s" size="%s">Button</Button>`,
			sel["variant"], sel["color"], sel["size"])
	},
}

func newButtonHarness(t interface{ Fatalf(string, ...any) }, opts ...Option) *Harness {
	h, err := New(buttonControls, buttonRenderer, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return h
}

func renderHTML(node *vdom.VNode) string {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		panic(err)
	}
	return html
}

type fakeClipboard struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (c *fakeClipboard) WriteText(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	return nil
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(_ context.Context, message string) {
	n.messages = append(n.messages, message)
}
