package vdom

import "strings"

// VKind tells what a VNode holds.
type VKind uint8

const (
	KindElement VKind = iota
	KindText
	KindFragment
	KindComponent
	// KindRaw is trusted HTML written without escaping.
	KindRaw
)

var kindNames = [...]string{"Element", "Text", "Fragment", "Component", "Raw"}

func (k VKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// VNode is one node of a rendered tree. Text is used by text and raw
// nodes, Comp by component nodes and Tag, Props and Children by elements.
type VNode struct {
	Kind     VKind
	Tag      string
	Props    Props
	Children []*VNode
	Key      string
	Text     string
	Comp     Component
}

// Props maps attribute names to values. Event handlers are stored under
// their "on<event>" name.
type Props map[string]any

// Handlers collects the event handlers of the node, keyed by attribute
// name.
func (v *VNode) Handlers() map[string]EventHandler {
	if v == nil {
		return nil
	}
	var out map[string]EventHandler
	for key, value := range v.Props {
		h, ok := value.(EventHandler)
		if !ok {
			continue
		}
		if out == nil {
			out = map[string]EventHandler{}
		}
		out[key] = h
	}
	return out
}

// IsInteractive reports whether the element carries at least one handler.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Handlers() {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

type Attr struct {
	Key   string
	Value any
}

// Component is anything that renders to a VNode.
type Component interface {
	Render() *VNode
}

type renderFunc func() *VNode

func (f renderFunc) Render() *VNode { return f() }

// Func adapts a plain render function to Component.
func Func(render func() *VNode) Component { return renderFunc(render) }
