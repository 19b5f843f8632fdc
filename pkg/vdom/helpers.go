package vdom

// Text creates an escaped text node.
func Text(content string) *VNode { return &VNode{Kind: KindText, Text: content} }

// Raw creates a node whose markup is written as is. Only use it with markup
// the host produced itself.
func Raw(html string) *VNode { return &VNode{Kind: KindRaw, Text: html} }

// Fragment groups children without a wrapper element. Attributes and
// handlers passed to it are ignored.
func Fragment(children ...any) *VNode {
	f := &VNode{Kind: KindFragment}
	for _, c := range children {
		switch c.(type) {
		case *VNode, []*VNode, string, Component:
			f.apply(c)
		}
	}
	return f
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfAttr returns the attribute if condition is true, an empty one otherwise.
func IfAttr(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Range maps items to nodes, skipping nil results.
func Range[T any](items []T, fn func(int, T) *VNode) []*VNode {
	out := make([]*VNode, 0, len(items))
	for i, item := range items {
		if n := fn(i, item); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Walk visits node and its descendants depth-first, expanding components.
// Returning false from fn stops descending into that node's children.
func Walk(node *VNode, fn func(*VNode) bool) {
	if node == nil {
		return
	}
	if node.Kind == KindComponent && node.Comp != nil {
		Walk(node.Comp.Render(), fn)
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, fn)
	}
}

// Find returns every element node for which match returns true.
func Find(root *VNode, match func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(root, func(n *VNode) bool {
		if n.Kind == KindElement && match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// TextContent concatenates the text of every text node under node.
func TextContent(node *VNode) string {
	var buf []byte
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindText {
			buf = append(buf, n.Text...)
		}
		return true
	})
	return string(buf)
}
