// Package vdom provides the virtual DOM used to describe preview widgets.
//
// A VNode tree is an in-memory description of markup. Preview instances
// build one from the current selection, the harness wraps it in its control
// and code panels, and a host turns the tree into HTML (pkg/render) or
// terminal output.
//
// # Element API
//
// Elements are created using variadic factory functions. Arguments may be
// attributes, event handlers, child nodes, strings (text children) or nil
// (ignored, which allows conditional attributes):
//
//	Div(Class("card"), ID("main"),
//	    Strong(Text("Title")),
//	    Button(Type("button"), OnClick(toggle), "Toggle"),
//	)
//
// # Event handlers
//
// Handlers are plain Go closures that stay on the host side. Renderers give
// interactive elements a hydration ID and collect the handlers under it so
// that a client event naming the ID can be dispatched back to the closure.
package vdom
