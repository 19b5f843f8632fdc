package previews

import (
	"fmt"

	"github.com/cosmos-docs/livepreview/pkg/preview"
	"github.com/cosmos-docs/livepreview/pkg/theme"
	. "github.com/cosmos-docs/livepreview/pkg/vdom"
)

const selectLabel = "Selecciona una opción"

var selectItems = []preview.ControlOption{
	{Label: "Opción 1", Value: "opcion1"},
	{Label: "Opción 2", Value: "opcion2"},
	{Label: "Opción 3", Value: "opcion3"},
}

// SelectPreview is the Galaxy select inside a labelled form control. The
// selected item follows the "value" control.
var SelectPreview = Definition{
	Name:          "select",
	Title:         "Select",
	Description:   "Select con etiqueta, color y tamaño configurables.",
	FollowsScheme: true,
	Controls: []preview.Control{
		{Label: "Color", Name: "color", Options: []preview.ControlOption{
			{Label: "Primario", Value: "primary"},
			{Label: "Secundario", Value: "secondary"},
		}},
		{Label: "Tamaño", Name: "size", Options: []preview.ControlOption{
			{Label: "Medio", Value: "medium"},
			{Label: "Pequeño", Value: "small"},
		}},
		{Label: "Valor", Name: "value", Options: selectItems},
	},
	New: func(mode theme.Mode) preview.Renderer {
		return preview.Funcs{
			Preview: func(sel preview.Selection) *VNode { return selectElement(mode, sel) },
			Code:    selectCode,
		}
	},
}

func selectElement(mode theme.Mode, sel preview.Selection) *VNode {
	color, size := sel.Get("color"), sel.Get("size")
	return Div(
		Class(theme.New(mode).Class(), "galaxy-surface"),
		Div(
			Class("galaxy-form-control", "galaxy-form-control--"+size, "galaxy--"+color),
			Label(ID("select-label"), Class("galaxy-form-control__label"), selectLabel),
			Select(
				AriaLabelledBy("select-label"),
				Class("galaxy-select", "galaxy-select--"+size),
				Range(selectItems, func(_ int, item preview.ControlOption) *VNode {
					return Option(
						Value(item.Value),
						Selected(sel.Is("value", item.Value)),
						item.Label,
					)
				}),
			),
		),
	)
}

func selectCode(sel preview.Selection) string {
	color, size := sel.Get("color"), sel.Get("size")
	return fmt.Sprintf(`<FormControl size="%[2]s">
  <InputLabel color="%[1]s">%[4]s</InputLabel>
  <Select
    value="%[3]s"
    label="%[4]s"
    color="%[1]s"
    size="%[2]s"
    onChange={...}
  >
    <MenuItem value="opcion1">Opción 1</MenuItem>
    <MenuItem value="opcion2">Opción 2</MenuItem>
    <MenuItem value="opcion3">Opción 3</MenuItem>
  </Select>
</FormControl>`, color, size, sel.Get("value"), selectLabel)
}
