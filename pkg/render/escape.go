package render

import "strings"

var (
	htmlReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	// attrReplacer also encodes whitespace controls so values survive
	// attribute normalization.
	attrReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// EscapeHTML escapes text for HTML content.
func EscapeHTML(s string) string { return htmlReplacer.Replace(s) }

// EscapeAttr escapes text for a quoted attribute value.
func EscapeAttr(s string) string { return attrReplacer.Replace(s) }
