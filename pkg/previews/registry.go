package previews

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/cosmos-docs/livepreview/pkg/preview"
	"github.com/cosmos-docs/livepreview/pkg/theme"
)

// ErrUnknownPreview is returned by Lookup for names that are not registered.
var ErrUnknownPreview = errors.New("previews: unknown preview")

// Definition describes one preview instance.
type Definition struct {
	// Name is the URL-safe identifier ("button").
	Name string

	// Title is the display name. Derived from Name when empty.
	Title string

	Description string

	// FollowsScheme reports whether the example adopts the reader's color
	// scheme. Previews that don't are always rendered light.
	FollowsScheme bool

	Controls []preview.Control

	// New builds the renderer for one mount. Renderers may hold
	// element-local state, so a renderer is never shared between mounts.
	New func(mode theme.Mode) preview.Renderer
}

// Mount validates the definition's controls and returns a harness whose
// example is rendered in mode, or in light mode when the preview does not
// follow the reader's scheme.
func (d Definition) Mount(mode theme.Mode, opts ...preview.Option) (*preview.Harness, error) {
	if !d.FollowsScheme {
		mode = theme.Light
	}
	h, err := preview.New(d.Controls, d.New(mode), opts...)
	if err != nil {
		return nil, fmt.Errorf("mount %s: %w", d.Name, err)
	}
	return h, nil
}

var (
	mu          sync.RWMutex
	definitions = map[string]Definition{}

	titleCaser = cases.Title(language.Spanish)
)

// Register adds d to the registry, replacing any definition with the same
// name. Labels are normalized to NFC so that accented labels compare equal
// regardless of how they were typed.
func Register(d Definition) error {
	if d.Name == "" {
		return errors.New("previews: definition without name")
	}
	if d.New == nil {
		return fmt.Errorf("previews: %s has no renderer", d.Name)
	}
	d.Controls = normalizeControls(d.Controls)
	if err := preview.Validate(d.Controls); err != nil {
		return fmt.Errorf("previews: %s: %w", d.Name, err)
	}
	if d.Title == "" {
		d.Title = titleCaser.String(d.Name)
	}

	mu.Lock()
	definitions[d.Name] = d
	mu.Unlock()
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(d Definition) {
	if err := Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the definition registered under name.
func Lookup(name string) (Definition, error) {
	mu.RLock()
	d, ok := definitions[name]
	mu.RUnlock()
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownPreview, name)
	}
	return d, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	mu.RLock()
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	mu.RUnlock()
	sort.Strings(names)
	return names
}

// All returns every definition sorted by name.
func All() []Definition {
	names := Names()
	out := make([]Definition, 0, len(names))
	mu.RLock()
	for _, name := range names {
		if d, ok := definitions[name]; ok {
			out = append(out, d)
		}
	}
	mu.RUnlock()
	return out
}

func normalizeControls(in []preview.Control) []preview.Control {
	out := make([]preview.Control, len(in))
	for i, c := range in {
		c.Label = norm.NFC.String(c.Label)
		opts := make([]preview.ControlOption, len(c.Options))
		for j, o := range c.Options {
			o.Label = norm.NFC.String(o.Label)
			opts[j] = o
		}
		c.Options = opts
		out[i] = c
	}
	return out
}

func init() {
	MustRegister(ButtonPreview)
	MustRegister(SelectPreview)
	MustRegister(SwitchPreview)
}
