package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cosmos-docs/livepreview/pkg/preview"
	"github.com/cosmos-docs/livepreview/pkg/previews"
	"github.com/cosmos-docs/livepreview/pkg/render"
	"github.com/cosmos-docs/livepreview/pkg/theme"
	"github.com/cosmos-docs/livepreview/pkg/vdom"
)

// PageOptions controls how preview pages are rendered.
type PageOptions struct {
	SiteTitle string
	Lang      string

	// Live adds the thin client and the WebSocket endpoint of each widget.
	// Without it pages are static snapshots.
	Live bool

	// InlineStyles embeds the theme stylesheet instead of linking it.
	InlineStyles bool

	// PreviewURL maps a preview name to the URL of its page. Default:
	// "/previews/<name>".
	PreviewURL func(name string) string

	// Groups arranges the index into titled sections. Previews missing
	// from every group are listed under "Other".
	Groups []IndexGroup
}

// IndexGroup is a titled section of the index.
type IndexGroup struct {
	Title    string
	Previews []string
}

func (o PageOptions) previewURL(name string) string {
	if o.PreviewURL != nil {
		return o.PreviewURL(name)
	}
	return "/previews/" + name
}

func (o PageOptions) pageData(title string, mode theme.Mode, body *vdom.VNode) render.PageData {
	page := render.PageData{
		Body:      body,
		Title:     title,
		Lang:      o.Lang,
		BodyClass: theme.New(mode).Class(),
		Meta:      []render.MetaTag{{Name: "color-scheme", Content: "light dark"}},
	}
	if o.SiteTitle != "" {
		page.Title = title + " | " + o.SiteTitle
	}
	if o.InlineStyles {
		page.Styles = []string{theme.Stylesheet()}
	} else {
		page.StyleSheets = []string{StylesheetPath}
	}
	if o.Live {
		page.Scripts = []render.ScriptTag{{Src: ClientPath, Defer: true}}
	}
	return page
}

// mountNode renders a fresh harness of def in its default state, wrapped in
// the element the thin client attaches to.
func mountNode(def previews.Definition, mode theme.Mode, opts PageOptions) (*vdom.VNode, error) {
	h, err := def.Mount(mode)
	if err != nil {
		return nil, err
	}
	defer h.Dispose()

	if !def.FollowsScheme {
		mode = theme.Light
	}
	return vdom.Div(
		vdom.Class("cosmos-mount", theme.New(mode).Class()),
		vdom.Data("preview", def.Name),
		vdom.IfAttr(opts.Live, vdom.Data("cosmos-preview", "true")),
		vdom.IfAttr(opts.Live, vdom.Data("target", h.ID())),
		vdom.IfAttr(opts.Live, vdom.Data("ws", opts.previewURL(def.Name)+"/ws")),
		h.View(),
	), nil
}

// WritePage renders the standalone page of a preview.
func WritePage(w io.Writer, def previews.Definition, mode theme.Mode, opts PageOptions) error {
	mount, err := mountNode(def, mode, opts)
	if err != nil {
		return err
	}
	body := vdom.Main(
		vdom.Class("cosmos-page"),
		vdom.H1(def.Title),
		vdom.If(def.Description != "", vdom.P(def.Description)),
		mount,
	)
	return render.NewRenderer(render.RendererConfig{}).RenderPage(w, opts.pageData(def.Title, mode, body))
}

// WriteEmbed renders the widget fragment of a preview for inclusion in
// another page. The host page must load the stylesheet and, for live
// widgets, the thin client.
func WriteEmbed(w io.Writer, def previews.Definition, mode theme.Mode, opts PageOptions) error {
	mount, err := mountNode(def, mode, opts)
	if err != nil {
		return err
	}
	return render.NewRenderer(render.RendererConfig{}).RenderToWriter(w, mount)
}

// WriteIndex renders the list of previews.
func WriteIndex(w io.Writer, defs []previews.Definition, mode theme.Mode, opts PageOptions) error {
	title := "Previews"
	body := vdom.Main(
		vdom.Class("cosmos-index"),
		vdom.H1(title),
		vdom.Range(groupDefinitions(defs, opts.Groups), func(_ int, g definitionGroup) *vdom.VNode {
			return vdom.Section(
				vdom.Key(g.title),
				vdom.Class("cosmos-index-group"),
				vdom.If(g.title != "", vdom.H2(g.title)),
				indexList(g.defs, opts),
			)
		}),
	)
	return render.NewRenderer(render.RendererConfig{}).RenderPage(w, opts.pageData(title, mode, body))
}

func indexList(defs []previews.Definition, opts PageOptions) *vdom.VNode {
	return vdom.Ul(vdom.Range(defs, func(_ int, d previews.Definition) *vdom.VNode {
		return vdom.Li(
			vdom.Key(d.Name),
			vdom.A(vdom.Href(opts.previewURL(d.Name)), d.Title),
			vdom.If(d.Description != "", vdom.P(d.Description)),
		)
	}))
}

type definitionGroup struct {
	title string
	defs  []previews.Definition
}

// groupDefinitions sorts defs into groups. Names a group lists that are not
// in defs are skipped.
func groupDefinitions(defs []previews.Definition, groups []IndexGroup) []definitionGroup {
	if len(groups) == 0 {
		return []definitionGroup{{defs: defs}}
	}

	byName := make(map[string]previews.Definition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}
	placed := make(map[string]bool, len(defs))

	out := make([]definitionGroup, 0, len(groups)+1)
	for _, g := range groups {
		dg := definitionGroup{title: g.Title}
		for _, name := range g.Previews {
			if d, ok := byName[name]; ok && !placed[name] {
				dg.defs = append(dg.defs, d)
				placed[name] = true
			}
		}
		if len(dg.defs) > 0 {
			out = append(out, dg)
		}
	}

	rest := definitionGroup{title: "Other"}
	for _, d := range defs {
		if !placed[d.Name] {
			rest.defs = append(rest.defs, d)
		}
	}
	if len(rest.defs) > 0 {
		out = append(out, rest)
	}
	return out
}

// Code returns the code def emits for the default selection with the given
// overrides applied. Unknown control names are ignored.
func Code(def previews.Definition, overrides map[string]string) (string, error) {
	h, err := def.Mount(theme.Light)
	if err != nil {
		return "", err
	}
	defer h.Dispose()

	for _, c := range h.Controls() {
		if v, ok := overrides[c.Name]; ok {
			h.SelectOption(c.Name, v)
		}
	}
	return h.Code(), nil
}

func (s *Server) pageOptions() PageOptions {
	return PageOptions{
		SiteTitle: s.config.SiteTitle,
		Lang:      s.config.Lang,
		Live:      true,
		Groups:    s.config.IndexGroups,
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	mode := theme.ModeFromRequest(r, s.config.DefaultTheme)
	theme.AdvertiseHint(w.Header())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := WriteIndex(w, previews.All(), mode, s.pageOptions()); err != nil {
		s.logger.Error("render index", "error", err)
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	def := definitionFrom(r.Context())
	mode := theme.ModeFromRequest(r, s.config.DefaultTheme)

	var buf strings.Builder
	if err := WritePage(&buf, def, mode, s.pageOptions()); err != nil {
		s.renderError(w, def, err)
		return
	}
	theme.AdvertiseHint(w.Header())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, buf.String())
}

func (s *Server) handleEmbed(w http.ResponseWriter, r *http.Request) {
	def := definitionFrom(r.Context())
	mode := theme.ModeFromRequest(r, s.config.DefaultTheme)

	var buf strings.Builder
	if err := WriteEmbed(&buf, def, mode, s.pageOptions()); err != nil {
		s.renderError(w, def, err)
		return
	}
	theme.AdvertiseHint(w.Header())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, buf.String())
}

// handleCode serves the emitted code for the selection given as query
// parameters, one per control. format=highlight returns the highlighted
// HTML unless the preview declares a control named format.
func (s *Server) handleCode(w http.ResponseWriter, r *http.Request) {
	def := definitionFrom(r.Context())
	query := r.URL.Query()

	overrides := make(map[string]string, len(query))
	for name := range query {
		overrides[name] = query.Get(name)
	}

	code, err := Code(def, overrides)
	if err != nil {
		s.renderError(w, def, err)
		return
	}

	if query.Get("format") == "highlight" && !hasControl(def, "format") {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, preview.Highlight(code))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, code)
}

func hasControl(def previews.Definition, name string) bool {
	for _, c := range def.Controls {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (s *Server) renderError(w http.ResponseWriter, def previews.Definition, err error) {
	s.logger.Error("render preview", "preview", def.Name, "error", err)
	http.Error(w, fmt.Sprintf("cannot render %s", def.Name), http.StatusInternalServerError)
}
