package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cosmos-docs/livepreview/pkg/theme"
)

// statusTimeout is how long a toast stays on the status line.
const statusTimeout = 2 * time.Second

// clearStatusMsg clears the status line if no newer toast replaced it.
type clearStatusMsg struct {
	serial int
}

func clearStatusAfter(serial int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{serial: serial}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		if msg.serial == m.status.serial {
			m.status.message = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	controls := m.harness.Controls()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Up):
		if len(controls) > 0 {
			m.cursor = (m.cursor - 1 + len(controls)) % len(controls)
		}

	case key.Matches(msg, m.keys.Down):
		if len(controls) > 0 {
			m.cursor = (m.cursor + 1) % len(controls)
		}

	case key.Matches(msg, m.keys.Prev):
		m.cycleOption(-1)

	case key.Matches(msg, m.keys.Next):
		m.cycleOption(1)

	case key.Matches(msg, m.keys.NextPreview):
		return m.switchPreview(1)

	case key.Matches(msg, m.keys.PrevPreview):
		return m.switchPreview(-1)

	case key.Matches(msg, m.keys.ToggleCode):
		m.harness.ToggleCodePanel()

	case key.Matches(msg, m.keys.TogglePanel):
		m.harness.ToggleControlsPanel()

	case key.Matches(msg, m.keys.ToggleScheme):
		return m.toggleScheme()

	case key.Matches(msg, m.keys.Copy):
		before := m.status.serial
		m.copyCode()
		if m.status.serial != before {
			return m, clearStatusAfter(m.status.serial)
		}
	}
	return m, nil
}

// cycleOption moves the control under the cursor to the next or previous
// option, wrapping around. Hidden controls are not editable.
func (m *Model) cycleOption(delta int) {
	if !m.harness.ControlsVisible() {
		return
	}
	controls := m.harness.Controls()
	if m.cursor >= len(controls) {
		return
	}
	c := controls[m.cursor]
	if len(c.Options) == 0 {
		return
	}
	current := 0
	sel := m.harness.Selection()
	for i, o := range c.Options {
		if o.Value == sel.Get(c.Name) {
			current = i
		}
	}
	next := (current + delta + len(c.Options)) % len(c.Options)
	m.harness.SelectOption(c.Name, c.Options[next].Value)
}

func (m Model) switchPreview(delta int) (tea.Model, tea.Cmd) {
	if len(m.defs) < 2 {
		return m, nil
	}
	m.current = (m.current + delta + len(m.defs)) % len(m.defs)
	if err := m.mount(nil); err != nil {
		m.err = err
		return m, nil
	}
	return m, tea.SetWindowTitle("cosmos · " + m.defs[m.current].Title)
}

// toggleScheme remounts the preview in the other color scheme, keeping the
// selection.
func (m Model) toggleScheme() (tea.Model, tea.Cmd) {
	if m.mode == theme.Dark {
		m.mode = theme.Light
	} else {
		m.mode = theme.Dark
	}
	keep := m.harness.Selection()
	if err := m.mount(keep); err != nil {
		m.err = err
	}
	return m, nil
}
