package preview

import (
	"regexp"

	"github.com/cosmos-docs/livepreview/pkg/render"
)

// attrNamePattern matches whitespace followed by an attribute name and "=".
var attrNamePattern = regexp.MustCompile(`(\s)([A-Za-z0-9_]+)=`)

// Marker adapts highlighting to a display surface.
type Marker struct {
	// Escape neutralizes characters that are significant to the surface.
	Escape func(string) string

	// Emphasize wraps an attribute name. Its output is never escaped.
	Emphasize func(name string) string
}

// HTMLMarker escapes markup and wraps attribute names in
// <span class="attr-name">.
var HTMLMarker = Marker{
	Escape: render.EscapeHTML,
	Emphasize: func(name string) string {
		return `<span class="attr-name">` + name + `</span>`
	},
}

// Highlight renders code as HTML with attribute names emphasized.
func Highlight(code string) string {
	return HighlightWith(code, HTMLMarker)
}

// HighlightWith escapes code with m.Escape and then emphasizes every
// attribute name. Escaping runs first so the markers are never escaped.
// Nil Marker functions act as the identity.
func HighlightWith(code string, m Marker) string {
	if m.Escape != nil {
		code = m.Escape(code)
	}
	if m.Emphasize == nil {
		return code
	}
	return attrNamePattern.ReplaceAllStringFunc(code, func(match string) string {
		sub := attrNamePattern.FindStringSubmatch(match)
		return sub[1] + m.Emphasize(sub[2]) + "="
	})
}
