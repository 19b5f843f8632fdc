// Package theme holds the Galaxy design tokens and the light/dark variants
// used by the preview instances.
package theme

import (
	"fmt"
	"strings"
)

// Mode is a palette mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// String implements fmt.Stringer.
func (m Mode) String() string { return string(m) }

// ParseMode parses "light" or "dark" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return "", fmt.Errorf("theme: unknown mode %q", s)
	}
}

// Palette is the set of color tokens for one mode.
type Palette struct {
	Mode              Mode
	Primary           string
	PrimaryContrast   string
	Secondary         string
	SecondaryContrast string
	Background        string
	Paper             string
	Text              string
	TextMuted         string
	Divider           string
	CodeBackground    string
}

// New returns the palette for mode. Unknown modes fall back to Light.
func New(mode Mode) Palette {
	p := Palette{
		Mode:              Light,
		Primary:           "#2063A0",
		PrimaryContrast:   "#fff",
		Secondary:         "#00BCD4",
		SecondaryContrast: "rgba(0, 0, 0, 0.87)",
		Background:        "#fff",
		Paper:             "#fff",
		Text:              "rgba(0, 0, 0, 0.87)",
		TextMuted:         "rgba(0, 0, 0, 0.6)",
		Divider:           "#e0e0e0",
		CodeBackground:    "#f5f5f5",
	}
	if mode == Dark {
		p.Mode = Dark
		p.Background = "#121212"
		p.Paper = "#1d1d1d"
		p.Text = "#fff"
		p.TextMuted = "rgba(255, 255, 255, 0.7)"
		p.Divider = "rgba(255, 255, 255, 0.12)"
		p.CodeBackground = "#2a2a2a"
	}
	return p
}

// Color returns the main color for a named intent ("primary",
// "secondary", "default").
func (p Palette) Color(intent string) string {
	switch intent {
	case "primary":
		return p.Primary
	case "secondary":
		return p.Secondary
	default:
		return p.TextMuted
	}
}

// Class is the CSS class that scopes the palette's custom properties.
func (p Palette) Class() string {
	return "galaxy-theme-" + string(p.Mode)
}
