package render

import (
	"strings"

	"github.com/cosmos-docs/livepreview/pkg/vdom"
)

func setOf(names string) map[string]struct{} {
	m := map[string]struct{}{}
	for _, n := range strings.Fields(names) {
		m[n] = struct{}{}
	}
	return m
}

var (
	// Pretty output keeps inline elements on the line of their parent.
	inlineTags = setOf("a b br code em i label option small span strong")

	// Boolean attributes are written bare when true and left out when
	// false.
	booleanAttrs = setOf("async autofocus checked defer disabled hidden multiple open readonly required selected")
)

func isInlineElement(tag string) bool {
	_, ok := inlineTags[tag]
	return ok
}

func isBooleanAttr(name string) bool {
	_, ok := booleanAttrs[name]
	return ok
}

func isVoidElement(tag string) bool { return vdom.IsVoidElement(tag) }
