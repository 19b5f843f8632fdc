// Package render provides server-side rendering of vdom trees to HTML.
//
// The renderer handles:
//
//   - Text and attribute escaping
//   - Void elements (input, br, ...)
//   - Boolean attributes (disabled, checked, ...)
//   - Deterministic attribute order
//   - Hydration IDs and event markers on interactive elements
//   - Full page rendering with DOCTYPE, head and body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Hydration IDs
//
// Elements with event handlers receive a data-hid attribute and one
// data-on-<event> marker per handler. The handlers are collected during
// rendering and can be looked up with Handler so that a client event naming
// the ID can be dispatched back to the Go closure. IDs restart at h1 after
// Reset, so a fresh render of the same tree yields the same IDs.
package render
