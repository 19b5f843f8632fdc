package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cosmos-docs/livepreview/pkg/preview"
	"github.com/cosmos-docs/livepreview/pkg/previews"
	"github.com/cosmos-docs/livepreview/pkg/render"
	"github.com/cosmos-docs/livepreview/pkg/theme"
	"github.com/cosmos-docs/livepreview/pkg/toast"
)

// Options configures the playground.
type Options struct {
	// Start is the name of the first preview shown. Default: the first one.
	Start string

	Mode theme.Mode

	// Clipboard receives the OSC 52 sequence. Default: os.Stderr.
	Clipboard io.Writer

	Logger *slog.Logger
}

// status is the toast line. It is shared by pointer so the harness notifier
// can reach it from inside Update.
type status struct {
	level   toast.Type
	message string
	serial  int
}

// Emit implements toast.Emitter.
func (s *status) Emit(_ string, detail any) {
	d, ok := detail.(toast.Detail)
	if !ok {
		return
	}
	s.level = d.Level
	s.message = d.Message
	s.serial++
}

// previewPane caches the rendered example. changes counts harness
// notifications so the pane is re-rendered only after something changed.
type previewPane struct {
	changes  int
	rendered int
	html     string
}

// Model is the playground model.
type Model struct {
	defs    []previews.Definition
	current int
	mode    theme.Mode

	harness *preview.Harness
	unsub   func()
	pane    *previewPane

	cursor int

	status    *status
	clipboard io.Writer
	logger    *slog.Logger

	keys     keyMap
	help     help.Model
	showHelp bool

	width  int
	height int
	err    error
}

// NewModel creates a playground over defs.
func NewModel(defs []previews.Definition, opts Options) (Model, error) {
	if len(defs) == 0 {
		return Model{}, errors.New("tui: no previews")
	}
	if opts.Mode == "" {
		opts.Mode = theme.Light
	}
	if opts.Clipboard == nil {
		opts.Clipboard = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	m := Model{
		defs:      defs,
		mode:      opts.Mode,
		status:    &status{},
		pane:      &previewPane{},
		clipboard: opts.Clipboard,
		logger:    opts.Logger.With("component", "tui"),
		keys:      defaultKeyMap(),
		help:      help.New(),
		width:     100,
		height:    30,
	}
	for i, d := range defs {
		if d.Name == opts.Start {
			m.current = i
		}
	}
	if err := m.mount(nil); err != nil {
		return Model{}, err
	}
	return m, nil
}

// mount replaces the harness with a fresh one for the current preview and
// applies keep to it.
func (m *Model) mount(keep preview.Selection) error {
	m.dispose()

	h, err := m.defs[m.current].Mount(m.mode,
		preview.WithClipboard(osc52Clipboard{out: m.clipboard}),
		preview.WithNotifier(toast.Notifier{Emitter: m.status}),
		preview.WithLogger(m.logger),
	)
	if err != nil {
		return err
	}
	h.Apply(keep)

	pane := m.pane
	pane.rendered = -1
	m.harness = h
	m.unsub = h.Subscribe(func() { pane.changes++ })
	if keep == nil {
		m.cursor = 0
	}
	return nil
}

func (m *Model) dispose() {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
	if m.harness != nil {
		m.harness.Dispose()
		m.harness = nil
	}
}

// Close disposes the mounted harness.
func (m Model) Close() {
	m.dispose()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("cosmos · " + m.defs[m.current].Title)
}

// Harness returns the mounted harness.
func (m Model) Harness() *preview.Harness { return m.harness }

// Current returns the definition being shown.
func (m Model) Current() previews.Definition { return m.defs[m.current] }

// Status returns the current toast message, if any.
func (m Model) Status() string { return m.status.message }

// previewHTML returns the pretty-printed example, re-rendering only after
// the harness reported a change.
func (m Model) previewHTML() string {
	if m.pane.rendered == m.pane.changes {
		return m.pane.html
	}
	r := render.NewRenderer(render.RendererConfig{Pretty: true})
	html, err := r.RenderToString(m.harness.Preview())
	if err != nil {
		m.logger.Error("render preview", "error", err)
		return err.Error()
	}
	m.pane.html = html
	m.pane.rendered = m.pane.changes
	return html
}

// copyCode copies the current code. The harness reports the outcome only
// through its notifier.
func (m Model) copyCode() {
	m.harness.CopyCode(context.Background())
}

// Run starts the playground on the terminal.
func Run(defs []previews.Definition, opts Options) error {
	m, err := NewModel(defs, opts)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if fm, ok := final.(Model); ok {
		fm.Close()
	} else {
		m.Close()
	}
	return err
}
