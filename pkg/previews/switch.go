package previews

import (
	"fmt"

	"github.com/cosmos-docs/livepreview/pkg/preview"
	"github.com/cosmos-docs/livepreview/pkg/theme"
	"github.com/cosmos-docs/livepreview/pkg/vango"
	. "github.com/cosmos-docs/livepreview/pkg/vdom"
)

// SwitchPreview is the Galaxy switch with a label. The checked state belongs
// to the example itself: the reader flips it by clicking the switch, and
// the controls never change it.
var SwitchPreview = Definition{
	Name:          "switch",
	Title:         "Switch",
	Description:   "Interruptor con estado local y etiqueta.",
	FollowsScheme: true,
	Controls: []preview.Control{
		{Label: "Color", Name: "color", Options: []preview.ControlOption{
			{Label: "Primario", Value: "primary"},
			{Label: "Secundario", Value: "secondary"},
			{Label: "Default", Value: "default"},
		}},
		{Label: "Disabled", Name: "disabled", Options: []preview.ControlOption{
			{Label: "No", Value: "false"},
			{Label: "Sí", Value: "true"},
		}},
	},
	New: func(mode theme.Mode) preview.Renderer {
		return &switchRenderer{mode: mode, checked: vango.NewFlag(true)}
	},
}

// switchRenderer carries the element-local checked flag of one mount.
type switchRenderer struct {
	mode    theme.Mode
	checked *vango.Flag
}

func (r *switchRenderer) Render(sel preview.Selection) *VNode {
	checked := r.checked.Get()
	disabled := sel.Is("disabled", "true")

	label := "Desactivado"
	if checked {
		label = "Activado"
	}

	var toggle any
	if !disabled {
		toggle = OnClick(func() { r.checked.Toggle() }, "action", "local", "key", "checked")
	}

	return Div(
		Class(theme.New(r.mode).Class(), "galaxy-surface"),
		Label(
			Class("galaxy-form-label"),
			Button(
				Type("button"),
				Role("switch"),
				AriaChecked(checked),
				Class(
					"galaxy-switch",
					"galaxy--"+sel.Get("color"),
					checkedClass(checked),
				),
				Disabled(disabled),
				toggle,
				Span(Class("galaxy-switch__thumb")),
			),
			Span(label),
		),
	)
}

func checkedClass(checked bool) string {
	if checked {
		return "galaxy-switch--checked"
	}
	return ""
}

func (r *switchRenderer) EmitCode(sel preview.Selection) string {
	return fmt.Sprintf(`<FormControlLabel
  control={
    <Switch
      color="%s"
      checked={checked}
      disabled={%s}
      onChange={(_, value) => setChecked(value)}
    />
  }
  label={checked ? "Activado" : "Desactivado"}
/>`, sel.Get("color"), disabledLiteral(sel))
}

func disabledLiteral(sel preview.Selection) string {
	if sel.Is("disabled", "true") {
		return "true"
	}
	return "false"
}
