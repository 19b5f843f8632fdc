package preview

import "github.com/cosmos-docs/livepreview/pkg/vdom"

// View builds the widget: toolbar, control panel, live example and code
// panel, all derived from the current state.
func (h *Harness) View() *vdom.VNode {
	sel := h.selection.Get()
	codeVisible := h.codeVisible.Get()
	controlsVisible := h.controlsVisible.Get()

	return vdom.Div(
		vdom.ID(h.id),
		vdom.Class("cosmos-preview"),
		h.toolbar(codeVisible, controlsVisible),
		vdom.If(controlsVisible, h.controlPanel(sel)),
		vdom.Div(
			vdom.Class("cosmos-preview__stage"),
			vdom.AriaLive("polite"),
			h.renderer.Render(sel),
		),
		vdom.If(codeVisible, vdom.Pre(
			vdom.ID(h.id+"-code"),
			vdom.Class("cosmos-preview__code"),
			vdom.Code(vdom.Raw(Highlight(h.renderer.EmitCode(sel)))),
		)),
	)
}

func (h *Harness) toolbar(codeVisible, controlsVisible bool) *vdom.VNode {
	controlsLabel := h.labels.ShowControls
	if controlsVisible {
		controlsLabel = h.labels.HideControls
	}
	codeLabel := h.labels.ShowCode
	if codeVisible {
		codeLabel = h.labels.HideCode
	}

	return vdom.Div(
		vdom.Class("cosmos-preview__toolbar"),
		vdom.Button(
			vdom.Type("button"),
			vdom.AriaControls(h.id+"-controls"),
			vdom.AriaExpanded(controlsVisible),
			vdom.OnClick(h.ToggleControlsPanel, "action", "toggle-controls"),
			controlsLabel,
		),
		vdom.Button(
			vdom.Type("button"),
			vdom.AriaControls(h.id+"-code"),
			vdom.AriaExpanded(codeVisible),
			vdom.OnClick(h.ToggleCodePanel, "action", "toggle-code"),
			codeLabel,
		),
		vdom.Button(
			vdom.Type("button"),
			vdom.OnClick(func() { h.CopyCode(h.ctx) }, "action", "copy"),
			h.labels.Copy,
		),
	)
}

func (h *Harness) controlPanel(sel Selection) *vdom.VNode {
	return vdom.Div(
		vdom.ID(h.id+"-controls"),
		vdom.Class("cosmos-preview__controls"),
		vdom.Range(h.controls, func(_ int, c Control) *vdom.VNode {
			return vdom.Fieldset(
				vdom.Key(c.Name),
				vdom.Class("cosmos-preview__control"),
				vdom.Data("control", c.Name),
				vdom.Legend(vdom.Class("cosmos-preview__control-label"), c.Label+":"),
				vdom.Div(
					vdom.Class("cosmos-preview__options"),
					vdom.Role("radiogroup"),
					vdom.Range(c.Options, func(_ int, o ControlOption) *vdom.VNode {
						return h.option(c, o, sel.Is(c.Name, o.Value))
					}),
				),
			)
		}),
	)
}

func (h *Harness) option(c Control, o ControlOption, checked bool) *vdom.VNode {
	name, value := c.Name, o.Value
	return vdom.Label(
		vdom.Key(value),
		vdom.Class("cosmos-preview__option"),
		vdom.Input(
			vdom.Type("radio"),
			vdom.Name(h.id+"-"+name),
			vdom.Value(value),
			vdom.Checked(checked),
			vdom.OnChange(func() { h.SelectOption(name, value) },
				"action", "select", "control", name, "value", value),
		),
		vdom.Span(o.Label),
	)
}
