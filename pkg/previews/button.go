package previews

import (
	"fmt"
	"strings"

	"github.com/cosmos-docs/livepreview/pkg/preview"
	"github.com/cosmos-docs/livepreview/pkg/theme"
	. "github.com/cosmos-docs/livepreview/pkg/vdom"
)

// ButtonPreview is the Galaxy button. It always renders on the light theme.
var ButtonPreview = Definition{
	Name:        "button",
	Title:       "Button",
	Description: "Botones con variantes contained, outlined y text.",
	Controls: []preview.Control{
		{Label: "Variante", Name: "variant", Options: []preview.ControlOption{
			{Label: "Contained", Value: "contained"},
			{Label: "Outlined", Value: "outlined"},
			{Label: "Text", Value: "text"},
		}},
		{Label: "Color", Name: "color", Options: []preview.ControlOption{
			{Label: "Primario", Value: "primary"},
			{Label: "Secundario", Value: "secondary"},
		}},
		{Label: "Tamaño", Name: "size", Options: []preview.ControlOption{
			{Label: "Medio", Value: "medium"},
			{Label: "Pequeño", Value: "small"},
			{Label: "Grande", Value: "large"},
		}},
		{Label: "Deshabilitado", Name: "disabled", Options: []preview.ControlOption{
			{Label: "No", Value: "false"},
			{Label: "Sí", Value: "true"},
		}},
	},
	New: func(mode theme.Mode) preview.Renderer {
		return preview.Funcs{
			Preview: func(sel preview.Selection) *VNode { return buttonElement(mode, sel) },
			Code:    buttonCode,
		}
	},
}

func buttonElement(mode theme.Mode, sel preview.Selection) *VNode {
	return Div(
		Class(theme.New(mode).Class(), "galaxy-surface"),
		Button(
			Type("button"),
			Class(
				"galaxy-button",
				"galaxy-button--"+sel.Get("variant"),
				"galaxy-button--"+sel.Get("size"),
				"galaxy--"+sel.Get("color"),
			),
			Disabled(sel.Is("disabled", "true")),
			"Button",
		),
	)
}

func buttonCode(sel preview.Selection) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<Button variant="%s" color="%s" size="%s"`,
		sel.Get("variant"), sel.Get("color"), sel.Get("size"))
	if sel.Is("disabled", "true") {
		b.WriteString(" disabled")
	}
	b.WriteString(">Button</Button>")
	return b.String()
}
