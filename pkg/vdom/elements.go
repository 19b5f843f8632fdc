package vdom

import "strings"

var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

// IsVoidElement reports whether tag is written without a closing tag.
func IsVoidElement(tag string) bool {
	_, ok := voidTags[tag]
	return ok
}

// El builds an element. Each argument may be nil, Attr, []Attr,
// EventHandler, *VNode, []*VNode, Component or a string (a text child).
// Anything else is ignored.
func El(tag string, args ...any) *VNode {
	n := &VNode{Kind: KindElement, Tag: tag, Props: Props{}}
	for _, arg := range args {
		n.apply(arg)
	}
	return n
}

func (v *VNode) apply(arg any) {
	switch a := arg.(type) {
	case Attr:
		v.setAttr(a)
	case []Attr:
		for _, x := range a {
			v.setAttr(x)
		}
	case EventHandler:
		v.Props[a.Event] = a
	case *VNode:
		v.appendChild(a)
	case []*VNode:
		for _, c := range a {
			v.appendChild(c)
		}
	case Component:
		v.appendChild(&VNode{Kind: KindComponent, Comp: a})
	case string:
		v.appendChild(&VNode{Kind: KindText, Text: a})
	}
}

func (v *VNode) appendChild(c *VNode) {
	if c != nil {
		v.Children = append(v.Children, c)
	}
}

func (v *VNode) setAttr(a Attr) {
	switch a.Key {
	case "":
	case "key":
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
	case "class":
		s, isString := a.Value.(string)
		prev, _ := v.Props["class"].(string)
		if !isString || prev == "" {
			v.Props["class"] = a.Value
			return
		}
		// Repeated Class attributes accumulate.
		if s = strings.TrimSpace(s); s != "" {
			v.Props["class"] = prev + " " + s
		}
	default:
		v.Props[a.Key] = a.Value
	}
}

func Main(args ...any) *VNode    { return El("main", args...) }
func Section(args ...any) *VNode { return El("section", args...) }
func H1(args ...any) *VNode      { return El("h1", args...) }
func H2(args ...any) *VNode      { return El("h2", args...) }

func Div(args ...any) *VNode  { return El("div", args...) }
func P(args ...any) *VNode    { return El("p", args...) }
func Span(args ...any) *VNode { return El("span", args...) }
func Pre(args ...any) *VNode  { return El("pre", args...) }
func Ul(args ...any) *VNode   { return El("ul", args...) }
func Li(args ...any) *VNode   { return El("li", args...) }

func A(args ...any) *VNode      { return El("a", args...) }
func Strong(args ...any) *VNode { return El("strong", args...) }
func Code(args ...any) *VNode   { return El("code", args...) }

func Button(args ...any) *VNode   { return El("button", args...) }
func Fieldset(args ...any) *VNode { return El("fieldset", args...) }
func Legend(args ...any) *VNode   { return El("legend", args...) }
func Label(args ...any) *VNode    { return El("label", args...) }
func Input(args ...any) *VNode    { return El("input", args...) }
func Select(args ...any) *VNode   { return El("select", args...) }
func Option(args ...any) *VNode   { return El("option", args...) }
