package preview

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/cosmos-docs/livepreview/pkg/vango"
	"github.com/cosmos-docs/livepreview/pkg/vdom"
)

// Labels are the user-visible strings of the widget chrome.
type Labels struct {
	Copy         string
	Copied       string
	ShowCode     string
	HideCode     string
	ShowControls string
	HideControls string
}

// DefaultLabels matches the language of the documentation site.
var DefaultLabels = Labels{
	Copy:         "Copiar",
	Copied:       "Código copiado al portapapeles",
	ShowCode:     "Mostrar código",
	HideCode:     "Ocultar código",
	ShowControls: "Mostrar controles",
	HideControls: "Ocultar controles",
}

// Harness owns the selection and view flags of one mounted preview.
// Mutations are expected from a single goroutine; reads are safe from any.
type Harness struct {
	id        string
	controls  []Control
	renderer  Renderer
	clipboard Clipboard
	notifier  Notifier
	labels    Labels
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	selection       *vango.Signal[Selection]
	codeVisible     *vango.Flag
	controlsVisible *vango.Flag

	disposed atomic.Bool
}

// Option configures a Harness.
type Option func(*Harness)

// WithClipboard sets the clipboard used by CopyCode.
func WithClipboard(c Clipboard) Option {
	return func(h *Harness) { h.clipboard = c }
}

// WithNotifier sets the sink for the "copied" notification.
func WithNotifier(n Notifier) Option {
	return func(h *Harness) { h.notifier = n }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithID sets the DOM id prefix of the widget. It must be unique within a
// document.
func WithID(id string) Option {
	return func(h *Harness) {
		if id != "" {
			h.id = id
		}
	}
}

// WithLabels overrides the chrome strings.
func WithLabels(l Labels) Option {
	return func(h *Harness) { h.labels = l }
}

// WithPanels sets the initial visibility of the code and controls panels.
func WithPanels(code, controls bool) Option {
	return func(h *Harness) {
		h.codeVisible = vango.NewFlag(code)
		h.controlsVisible = vango.NewFlag(controls)
	}
}

// WithContext sets the parent of the harness lifetime context. The
// lifetime context is passed to the clipboard when the copy button is
// pressed and is canceled by Dispose.
func WithContext(ctx context.Context) Option {
	return func(h *Harness) {
		if ctx != nil {
			h.ctx = ctx
		}
	}
}

// New validates controls and mounts a harness with the default selection.
func New(controls []Control, r Renderer, opts ...Option) (*Harness, error) {
	if err := Validate(controls); err != nil {
		return nil, err
	}

	h := &Harness{
		id:              "cp-" + strings.SplitN(uuid.NewString(), "-", 2)[0],
		controls:        append([]Control(nil), controls...),
		renderer:        r,
		labels:          DefaultLabels,
		logger:          slog.Default(),
		ctx:             context.Background(),
		selection:       vango.NewSignal(Selection{}),
		codeVisible:     vango.NewFlag(true),
		controlsVisible: vango.NewFlag(true),
	}
	if h.renderer == nil {
		h.renderer = Funcs{}
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With("component", "preview", "harness", h.id)
	h.ctx, h.cancel = context.WithCancel(h.ctx)

	h.Initialize()
	return h, nil
}

// MustNew is like New but panics on an invalid schema. Intended for
// package-level preview definitions whose controls are literals.
func MustNew(controls []Control, r Renderer, opts ...Option) *Harness {
	h, err := New(controls, r, opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// ID returns the DOM id of the widget.
func (h *Harness) ID() string { return h.id }

// Initialize resets the selection to the first option of every control.
func (h *Harness) Initialize() {
	if h.disposed.Load() {
		return
	}
	h.selection.Set(DefaultSelection(h.controls))
}

// SelectOption sets control name to value and leaves every other control
// untouched. Unknown control names are ignored.
func (h *Harness) SelectOption(name, value string) {
	if h.disposed.Load() {
		return
	}
	c, ok := h.control(name)
	if !ok {
		h.logger.Debug("ignoring unknown control", "control", name, "value", value)
		return
	}
	if _, ok := c.Option(value); !ok {
		h.logger.Debug("undeclared option value", "control", name, "value", value)
	}
	h.selection.Update(func(sel Selection) Selection {
		return sel.With(name, value)
	})
}

// Apply selects every entry of sel in one step: subscribers are notified
// once however many controls change. Unknown names are ignored as in
// SelectOption.
func (h *Harness) Apply(sel Selection) {
	vango.Batch(func() {
		for _, name := range sel.Names() {
			h.SelectOption(name, sel[name])
		}
	})
}

// ToggleCodePanel flips the code panel visibility.
func (h *Harness) ToggleCodePanel() {
	if h.disposed.Load() {
		return
	}
	h.codeVisible.Toggle()
}

// ToggleControlsPanel flips the controls panel visibility.
func (h *Harness) ToggleControlsPanel() {
	if h.disposed.Load() {
		return
	}
	h.controlsVisible.Toggle()
}

// CopyCode writes the current code to the clipboard and shows the "copied"
// notification. Errors never reach the caller: a write that fails
// synchronously, or a missing clipboard, only suppresses the notification.
func (h *Harness) CopyCode(ctx context.Context) {
	if h.disposed.Load() {
		return
	}
	code := h.renderer.EmitCode(h.selection.Peek())

	var err error
	if h.clipboard == nil {
		err = ErrNoClipboard
	} else {
		err = h.clipboard.WriteText(ctx, code)
	}
	if err != nil {
		h.logger.Warn("copy to clipboard failed", "error", err)
		return
	}

	if h.notifier != nil {
		h.notifier.Notify(ctx, h.labels.Copied)
	}
}

// Selection returns a copy of the current selection.
func (h *Harness) Selection() Selection {
	return h.selection.Get().Clone()
}

// Controls returns the declared controls.
func (h *Harness) Controls() []Control {
	return append([]Control(nil), h.controls...)
}

// Preview renders the example for the current selection.
func (h *Harness) Preview() *vdom.VNode {
	return h.renderer.Render(h.selection.Get())
}

// Code returns the source code for the current selection.
func (h *Harness) Code() string {
	return h.renderer.EmitCode(h.selection.Get())
}

// HighlightedCode returns Code as highlighted HTML.
func (h *Harness) HighlightedCode() string {
	return Highlight(h.Code())
}

// CodeVisible reports whether the code panel is shown.
func (h *Harness) CodeVisible() bool { return h.codeVisible.Get() }

// ControlsVisible reports whether the controls panel is shown.
func (h *Harness) ControlsVisible() bool { return h.controlsVisible.Get() }

// Subscribe calls fn after every change of the selection or of a panel
// flag. The returned function removes the subscription.
func (h *Harness) Subscribe(fn func()) (unsubscribe func()) {
	if h.disposed.Load() || fn == nil {
		return func() {}
	}
	l := vango.NewListenerFunc(fn)
	offs := []func(){
		h.selection.Subscribe(l),
		h.codeVisible.Subscribe(l),
		h.controlsVisible.Subscribe(l),
	}
	return func() {
		for _, f := range offs {
			f()
		}
	}
}

// Dispose unmounts the harness: subscribers are dropped, the lifetime
// context is canceled and later mutations are ignored.
func (h *Harness) Dispose() {
	if !h.disposed.CompareAndSwap(false, true) {
		return
	}
	h.selection.Reset()
	h.codeVisible.Reset()
	h.controlsVisible.Reset()
	h.cancel()
}

// Disposed reports whether Dispose has been called.
func (h *Harness) Disposed() bool { return h.disposed.Load() }

func (h *Harness) control(name string) (Control, bool) {
	for _, c := range h.controls {
		if c.Name == name {
			return c, true
		}
	}
	return Control{}, false
}
