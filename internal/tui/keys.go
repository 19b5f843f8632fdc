package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Prev         key.Binding
	Next         key.Binding
	NextPreview  key.Binding
	PrevPreview  key.Binding
	ToggleCode   key.Binding
	TogglePanel  key.Binding
	Copy         key.Binding
	ToggleScheme key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "control anterior")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "control siguiente")),
		Prev:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "opción anterior")),
		Next:         key.NewBinding(key.WithKeys("right", "l", "enter", " "), key.WithHelp("→/l", "opción siguiente")),
		NextPreview:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "ejemplo siguiente")),
		PrevPreview:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "ejemplo anterior")),
		ToggleCode:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "código")),
		TogglePanel:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "controles")),
		Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copiar")),
		ToggleScheme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tema")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ayuda")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "salir")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.ToggleCode, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.NextPreview, k.PrevPreview, k.ToggleScheme},
		{k.ToggleCode, k.TogglePanel, k.Copy},
		{k.Help, k.Quit},
	}
}
