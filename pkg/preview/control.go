package preview

import (
	"maps"
	"sort"
)

// ControlOption is one selectable value of a control.
type ControlOption struct {
	Label string `json:"label" yaml:"label" validate:"required"`
	Value string `json:"value" yaml:"value" validate:"required"`
}

// Control is a named radio group.
type Control struct {
	Label   string          `json:"label" yaml:"label" validate:"required"`
	Name    string          `json:"name" yaml:"name" validate:"required,control_name"`
	Options []ControlOption `json:"options" yaml:"options" validate:"required,min=1,dive"`
}

// Option returns the option with the given value.
func (c Control) Option(value string) (ControlOption, bool) {
	for _, o := range c.Options {
		if o.Value == value {
			return o, true
		}
	}
	return ControlOption{}, false
}

// Selection maps control names to the chosen option value.
// A Selection handed to a Renderer must be treated as read-only.
type Selection map[string]string

// DefaultSelection selects the first option of every control.
func DefaultSelection(controls []Control) Selection {
	sel := make(Selection, len(controls))
	for _, c := range controls {
		if len(c.Options) > 0 {
			sel[c.Name] = c.Options[0].Value
		}
	}
	return sel
}

// Get returns the value selected for name, or "" when absent.
func (s Selection) Get(name string) string {
	return s[name]
}

// Is reports whether name is set to value.
func (s Selection) Is(name, value string) bool {
	v, ok := s[name]
	return ok && v == value
}

// With returns a copy of s with name set to value.
func (s Selection) With(name, value string) Selection {
	out := s.Clone()
	out[name] = value
	return out
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	maps.Copy(out, s)
	return out
}

// Names returns the selected control names in sorted order.
func (s Selection) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
