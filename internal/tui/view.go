package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cosmos-docs/livepreview/pkg/preview"
	"github.com/cosmos-docs/livepreview/pkg/toast"
)

// terminalMarker emphasizes attribute names with color. Terminal output
// needs no escaping.
var terminalMarker = preview.Marker{
	Emphasize: func(name string) string { return attrNameStyle.Render(name) },
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(statusErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	paneWidth := m.width - 4
	if paneWidth < 20 {
		paneWidth = 20
	}

	panes := []string{m.renderPane("Vista previa", m.previewHTML(), paneWidth)}
	if m.harness.CodeVisible() {
		code := preview.HighlightWith(m.harness.Code(), terminalMarker)
		panes = append(panes, m.renderPane("Código", code, paneWidth))
	}
	if m.harness.ControlsVisible() {
		panes = append(panes, m.renderPane("Controles", m.renderControls(), paneWidth))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, panes...))
	b.WriteString("\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.defs)+1)
	tabs = append(tabs, titleStyle.Render("COSMOS"))
	for i, d := range m.defs {
		if i == m.current {
			tabs = append(tabs, activeTabStyle.Render(d.Title))
		} else {
			tabs = append(tabs, tabStyle.Render(d.Title))
		}
	}
	tabs = append(tabs, labelStyle.Render(string(m.mode)))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderPane(title, body string, width int) string {
	content := paneTitleStyle.Render(title) + "\n" + strings.TrimRight(body, "\n")
	return paneStyle.Width(width).Render(content)
}

func (m Model) renderControls() string {
	sel := m.harness.Selection()
	lines := make([]string, 0, len(m.harness.Controls()))
	for i, c := range m.harness.Controls() {
		label := labelStyle.Render(c.Label)
		prefix := "  "
		if i == m.cursor {
			label = cursorLabelStyle.Render(c.Label)
			prefix = "> "
		}

		opts := make([]string, 0, len(c.Options))
		for _, o := range c.Options {
			if sel.Is(c.Name, o.Value) {
				opts = append(opts, selectedOptionStyle.Render("(•) "+o.Label))
			} else {
				opts = append(opts, optionStyle.Render("( ) "+o.Label))
			}
		}
		lines = append(lines, prefix+label+"  "+strings.Join(opts, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	if m.status.message == "" {
		return ""
	}
	if m.status.level == toast.TypeError {
		return statusErrorStyle.Render(m.status.message)
	}
	return statusSuccessStyle.Render("✓ " + m.status.message)
}
