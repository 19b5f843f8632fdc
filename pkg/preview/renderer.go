package preview

import "github.com/cosmos-docs/livepreview/pkg/vdom"

// Renderer derives the two views of a selection. Both methods must be pure
// functions of the selection they receive.
type Renderer interface {
	// Render builds the live example element.
	Render(sel Selection) *vdom.VNode

	// EmitCode returns the source code that produces the example.
	EmitCode(sel Selection) string
}

// Funcs adapts a pair of functions to Renderer.
type Funcs struct {
	Preview func(Selection) *vdom.VNode
	Code    func(Selection) string
}

// Render implements Renderer.
func (f Funcs) Render(sel Selection) *vdom.VNode {
	if f.Preview == nil {
		return nil
	}
	return f.Preview(sel)
}

// EmitCode implements Renderer.
func (f Funcs) EmitCode(sel Selection) string {
	if f.Code == nil {
		return ""
	}
	return f.Code(sel)
}
