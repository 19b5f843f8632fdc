package render

import (
	"io"
	"sort"

	"github.com/cosmos-docs/livepreview/pkg/vdom"
)

// PageData describes a complete HTML document around a body tree.
type PageData struct {
	Body  *vdom.VNode
	Title string
	// Lang defaults to "en".
	Lang      string
	BodyClass string
	Meta      []MetaTag
	// StyleSheets are linked in order, Styles are inlined after them.
	StyleSheets []string
	Styles      []string
	// Scripts are written at the end of the body.
	Scripts []ScriptTag
}

type MetaTag struct {
	Name      string
	Content   string
	HTTPEquiv string
}

type ScriptTag struct {
	Src    string
	Defer  bool
	Module bool
	Attrs  map[string]string
	Inline string
}

// RenderPage writes a full document. Handlers found in the body are
// collected like in RenderToWriter.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	out := &htmlWriter{w: w}
	out.str("<!DOCTYPE html>\n<html lang=\"" + EscapeAttr(lang) + "\">\n")
	writeHead(out, page)
	if page.BodyClass == "" {
		out.str("<body>\n")
	} else {
		out.str(`<body class="` + EscapeAttr(page.BodyClass) + "\">\n")
	}
	if out.err != nil {
		return out.err
	}

	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}

	for _, s := range page.Scripts {
		writeScript(out, s)
	}
	out.str("</body>\n</html>\n")
	return out.err
}

func writeHead(out *htmlWriter, page PageData) {
	out.str("<head>\n")
	out.str("  <meta charset=\"utf-8\">\n")
	out.str("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	if page.Title != "" {
		out.str("  <title>" + EscapeHTML(page.Title) + "</title>\n")
	}
	for _, m := range page.Meta {
		out.str("  <meta")
		optionalAttr(out, "name", m.Name)
		optionalAttr(out, "http-equiv", m.HTTPEquiv)
		optionalAttr(out, "content", m.Content)
		out.str(">\n")
	}
	for _, href := range page.StyleSheets {
		out.str(`  <link rel="stylesheet" href="` + EscapeAttr(href) + "\">\n")
	}
	for _, css := range page.Styles {
		out.str("  <style>" + css + "</style>\n")
	}
	out.str("</head>\n")
}

func writeScript(out *htmlWriter, s ScriptTag) {
	out.str("  <script")
	optionalAttr(out, "src", s.Src)
	if s.Module {
		out.str(` type="module"`)
	}
	names := make([]string, 0, len(s.Attrs))
	for name := range s.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out.str(" " + name + `="` + EscapeAttr(s.Attrs[name]) + `"`)
	}
	if s.Defer {
		out.str(" defer")
	}
	out.str(">" + s.Inline + "</script>\n")
}

func optionalAttr(out *htmlWriter, name, value string) {
	if value != "" {
		out.str(" " + name + `="` + EscapeAttr(value) + `"`)
	}
}
