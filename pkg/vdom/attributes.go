package vdom

import (
	"strconv"
	"strings"
)

// AttrOf creates an arbitrary attribute.
func AttrOf(key string, value any) Attr { return Attr{Key: key, Value: value} }

// Key sets the reconciliation key. It is never rendered.
func Key(key string) Attr { return AttrOf("key", key) }

func ID(id string) Attr { return AttrOf("id", id) }

// Class joins the non-empty class names with spaces.
func Class(classes ...string) Attr {
	return AttrOf("class", strings.Join(strings.Fields(strings.Join(classes, " ")), " "))
}

// Data creates a data-* attribute: Data("control", "variant") renders as
// data-control="variant".
func Data(key, value string) Attr { return AttrOf("data-"+key, value) }

func Role(role string) Attr         { return AttrOf("role", role) }
func AriaLabelledBy(id string) Attr { return AttrOf("aria-labelledby", id) }
func AriaControls(id string) Attr   { return AttrOf("aria-controls", id) }
func AriaLive(mode string) Attr     { return AttrOf("aria-live", mode) }
func AriaExpanded(on bool) Attr     { return aria("expanded", on) }
func AriaChecked(on bool) Attr      { return aria("checked", on) }
func Href(url string) Attr          { return AttrOf("href", url) }
func Name(name string) Attr         { return AttrOf("name", name) }
func Value(value string) Attr       { return AttrOf("value", value) }
func Type(t string) Attr            { return AttrOf("type", t) }
func Checked(checked bool) Attr     { return AttrOf("checked", checked) }
func Disabled(disabled bool) Attr   { return AttrOf("disabled", disabled) }
func Selected(selected bool) Attr   { return AttrOf("selected", selected) }

// aria attributes carry "true" or "false" rather than being boolean
// attributes.
func aria(name string, on bool) Attr {
	return AttrOf("aria-"+name, strconv.FormatBool(on))
}
