package vtest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cosmos-docs/livepreview/pkg/render"
	"github.com/cosmos-docs/livepreview/pkg/vdom"
)

// failureContext limits how much markup a failed expectation prints.
const failureContext = 500

// RenderToString renders node with a fresh renderer. A render error
// yields "".
func RenderToString(node *vdom.VNode) string {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

func ExpectContains(t testing.TB, node *vdom.VNode, want string) {
	t.Helper()
	html := RenderToString(node)
	assert.Contains(t, html, want, "rendered:\n%s", clip(html))
}

func ExpectNotContains(t testing.TB, node *vdom.VNode, unwanted string) {
	t.Helper()
	html := RenderToString(node)
	assert.NotContains(t, html, unwanted, "rendered:\n%s", clip(html))
}

// ExpectElement checks that a <tag> element was rendered.
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	assert.Contains(t, html, "<"+tag, "no <%s> in:\n%s", tag, clip(html))
}

// ExpectAttribute checks for attr="value" with value escaped the way the
// renderer escapes it.
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	assert.Contains(t, html, attr+`="`+render.EscapeAttr(value)+`"`, "rendered:\n%s", clip(html))
}

func clip(s string) string {
	if len(s) > failureContext {
		return s[:failureContext] + "..."
	}
	return s
}
