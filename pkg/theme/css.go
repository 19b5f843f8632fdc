package theme

import (
	"fmt"
	"strings"
)

// Variables renders the palette as CSS custom properties scoped to Class.
func (p Palette) Variables() string {
	var b strings.Builder
	fmt.Fprintf(&b, ".%s{", p.Class())
	fmt.Fprintf(&b, "--galaxy-primary:%s;", p.Primary)
	fmt.Fprintf(&b, "--galaxy-primary-contrast:%s;", p.PrimaryContrast)
	fmt.Fprintf(&b, "--galaxy-secondary:%s;", p.Secondary)
	fmt.Fprintf(&b, "--galaxy-secondary-contrast:%s;", p.SecondaryContrast)
	fmt.Fprintf(&b, "--galaxy-default:%s;", p.TextMuted)
	fmt.Fprintf(&b, "--galaxy-bg:%s;", p.Background)
	fmt.Fprintf(&b, "--galaxy-paper:%s;", p.Paper)
	fmt.Fprintf(&b, "--galaxy-text:%s;", p.Text)
	fmt.Fprintf(&b, "--galaxy-text-muted:%s;", p.TextMuted)
	fmt.Fprintf(&b, "--galaxy-divider:%s;", p.Divider)
	fmt.Fprintf(&b, "--galaxy-code-bg:%s;", p.CodeBackground)
	fmt.Fprintf(&b, "color-scheme:%s;", p.Mode)
	b.WriteString("background:var(--galaxy-paper);color:var(--galaxy-text);}")
	return b.String()
}

// componentCSS styles the harness chrome and the Galaxy components. Every
// color comes from the custom properties emitted by Variables.
const componentCSS = `
.cosmos-preview{border:1px solid var(--galaxy-divider);padding:1rem;border-radius:8px;font-family:system-ui,sans-serif}
.cosmos-preview__toolbar{display:flex;gap:.5rem;justify-content:flex-end;margin-bottom:.5rem}
.cosmos-preview__toolbar button{font:inherit;font-size:.8rem;background:none;border:1px solid var(--galaxy-divider);border-radius:4px;color:inherit;cursor:pointer;padding:.2rem .6rem}
.cosmos-preview__controls{margin-bottom:1rem;border:0;padding:0}
.cosmos-preview__control{margin-bottom:.5rem;border:0;padding:0}
.cosmos-preview__control-label{font-weight:bold}
.cosmos-preview__options{display:flex;gap:1rem;margin-top:.5rem}
.cosmos-preview__option{display:flex;align-items:center;gap:.25rem}
.cosmos-preview__stage{margin-bottom:1rem;display:flex;gap:1rem;align-items:center}
.cosmos-preview__code{background:var(--galaxy-code-bg);padding:1rem;border-radius:8px;font-size:.9rem;overflow:auto;margin:0}
.cosmos-preview .attr-name{color:var(--galaxy-primary);font-weight:600}
.cosmos-toast{position:fixed;bottom:1rem;right:1rem;padding:.5rem 1rem;border-radius:4px;background:#323232;color:#fff;font-family:system-ui,sans-serif}
.galaxy--primary{--galaxy-intent:var(--galaxy-primary);--galaxy-intent-contrast:var(--galaxy-primary-contrast)}
.galaxy--secondary{--galaxy-intent:var(--galaxy-secondary);--galaxy-intent-contrast:var(--galaxy-secondary-contrast)}
.galaxy--default{--galaxy-intent:var(--galaxy-default);--galaxy-intent-contrast:var(--galaxy-paper)}
.galaxy-button{font:500 .875rem system-ui,sans-serif;text-transform:uppercase;border-radius:4px;cursor:pointer;padding:6px 16px;border:1px solid transparent;background:none;color:var(--galaxy-intent)}
.galaxy-button--contained{background:var(--galaxy-intent);color:var(--galaxy-intent-contrast)}
.galaxy-button--outlined{border-color:var(--galaxy-intent)}
.galaxy-button--small{padding:4px 10px;font-size:.8125rem}
.galaxy-button--large{padding:8px 22px;font-size:.9375rem}
.galaxy-button:disabled{opacity:.38;cursor:default}
.galaxy-form-control{display:inline-flex;flex-direction:column;gap:.25rem;min-width:14rem}
.galaxy-form-control__label{font-size:.75rem;color:var(--galaxy-intent)}
.galaxy-select{font:inherit;padding:16px 14px;border:1px solid var(--galaxy-divider);border-radius:4px;background:var(--galaxy-paper);color:var(--galaxy-text);outline-color:var(--galaxy-intent)}
.galaxy-select--small{padding:8px 14px}
.galaxy-form-label{display:inline-flex;align-items:center;gap:.5rem;cursor:pointer}
.galaxy-switch{position:relative;width:34px;height:14px;border-radius:7px;border:0;padding:0;cursor:pointer;background:var(--galaxy-divider)}
.galaxy-switch__thumb{position:absolute;top:-3px;left:-3px;width:20px;height:20px;border-radius:50%;background:#fafafa;box-shadow:0 1px 3px rgba(0,0,0,.4);transition:left .15s}
.galaxy-switch--checked{background:var(--galaxy-intent)}
.galaxy-switch--checked .galaxy-switch__thumb{left:17px;background:var(--galaxy-intent)}
.galaxy-switch:disabled{opacity:.38;cursor:default}
`

// Stylesheet returns the complete CSS for every mode plus the components.
func Stylesheet() string {
	var b strings.Builder
	b.WriteString(New(Light).Variables())
	b.WriteString("\n")
	b.WriteString(New(Dark).Variables())
	b.WriteString(componentCSS)
	return b.String()
}
