package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/cosmos-docs/livepreview/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty indents block elements, one level per nesting depth. Content
	// of <pre> is always written verbatim.
	Pretty bool

	// Indent is one indentation level in pretty mode. Defaults to two
	// spaces.
	Indent string

	// HIDPrefix starts every hydration ID so that several widgets rendered
	// into one document don't collide. Defaults to "h".
	HIDPrefix string
}

// Renderer turns VNode trees into HTML and remembers the handlers of every
// interactive element it wrote, keyed by hydration ID. It is not safe for
// concurrent use.
type Renderer struct {
	config   RendererConfig
	lastHID  uint32
	handlers map[string]vdom.EventHandler
}

func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	if config.HIDPrefix == "" {
		config.HIDPrefix = "h"
	}
	r := &Renderer{config: config}
	r.Reset()
	return r
}

// Reset restarts hydration IDs and forgets collected handlers.
func (r *Renderer) Reset() {
	r.lastHID = 0
	r.handlers = map[string]vdom.EventHandler{}
}

func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var sb strings.Builder
	if err := r.RenderToWriter(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	out := &htmlWriter{w: w, indent: r.config.Indent, pretty: r.config.Pretty}
	if err := r.node(out, node, 0); err != nil {
		return err
	}
	return out.err
}

// Handler looks up the handler for hid and event ("click" or "onclick").
func (r *Renderer) Handler(hid, event string) (vdom.EventHandler, bool) {
	h, ok := r.handlers[handlerKey(hid, "on"+strings.TrimPrefix(event, "on"))]
	return h, ok
}

// HandlerCount is the number of handlers collected since the last Reset.
func (r *Renderer) HandlerCount() int { return len(r.handlers) }

func handlerKey(hid, attr string) string { return hid + "_" + attr }

// htmlWriter keeps the first write error and ignores writes after it.
type htmlWriter struct {
	w      io.Writer
	err    error
	indent string
	pretty bool
}

func (h *htmlWriter) str(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) newline() {
	if h.pretty {
		h.str("\n")
	}
}

func (h *htmlWriter) pad(depth int) {
	if h.pretty && depth > 0 {
		h.str(strings.Repeat(h.indent, depth))
	}
}

func (r *Renderer) node(out *htmlWriter, n *vdom.VNode, depth int) error {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case vdom.KindText:
		out.str(EscapeHTML(n.Text))
	case vdom.KindRaw:
		out.str(n.Text)
	case vdom.KindComponent:
		if n.Comp != nil {
			return r.node(out, n.Comp.Render(), depth)
		}
	case vdom.KindFragment:
		return r.children(out, n.Children, depth)
	case vdom.KindElement:
		return r.element(out, n, depth)
	default:
		return fmt.Errorf("unknown node kind: %d", n.Kind)
	}
	return nil
}

func (r *Renderer) children(out *htmlWriter, nodes []*vdom.VNode, depth int) error {
	for _, c := range nodes {
		if err := r.node(out, c, depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) element(out *htmlWriter, n *vdom.VNode, depth int) error {
	tag := n.Tag
	if tag == "" {
		return errors.New("element without tag")
	}

	out.pad(depth)
	out.str("<" + tag)
	writeAttrs(out, n.Props)
	if n.IsInteractive() {
		r.lastHID++
		hid := r.config.HIDPrefix + strconv.FormatUint(uint64(r.lastHID), 10)
		out.str(` data-hid="` + hid + `"`)
		for attr, h := range n.Handlers() {
			r.handlers[handlerKey(hid, attr)] = h
		}
	}
	out.str(">")

	if isVoidElement(tag) {
		out.newline()
		return out.err
	}

	block := len(n.Children) > 0 && tag != "pre" && !isInlineElement(tag)
	if block {
		out.newline()
	}

	pretty := out.pretty
	if tag == "pre" {
		out.pretty = false
	}
	err := r.children(out, n.Children, depth+1)
	out.pretty = pretty
	if err != nil {
		return err
	}

	if block {
		out.pad(depth)
	}
	out.str("</" + tag + ">")
	out.newline()
	return out.err
}

// writeAttrs writes attributes in name order, then a data-on-<event>
// marker for every handler. Props starting with "_" are internal.
func writeAttrs(out *htmlWriter, props vdom.Props) {
	names := make([]string, 0, len(props))
	for name := range props {
		if !strings.HasPrefix(name, "_") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var events []string
	for _, name := range names {
		switch v := props[name].(type) {
		case vdom.EventHandler:
			events = append(events, strings.TrimPrefix(name, "on"))
		case bool:
			if isBooleanAttr(name) {
				if v {
					out.str(" " + name)
				}
				continue
			}
			out.str(" " + name + `="` + strconv.FormatBool(v) + `"`)
		default:
			s := attrString(v)
			if s == "" && name != "value" {
				continue
			}
			out.str(" " + name + `="` + EscapeAttr(s) + `"`)
		}
	}
	for _, ev := range events {
		out.str(" data-on-" + ev + `="true"`)
	}
}

func attrString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
