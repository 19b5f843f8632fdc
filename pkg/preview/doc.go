// Package preview implements the live preview harness.
//
// A Harness maps a declarative list of controls to a rendered example and
// the source code that produces it. Both are derived from one Selection,
// kept in a reactive cell, so they never disagree:
//
//	h, err := preview.New(controls, preview.Funcs{
//	    Preview: renderButton,
//	    Code:    buttonCode,
//	})
//	h.SelectOption("variant", "outlined")
//	h.Code() // <Button variant="outlined" ...>
//
// The harness does not draw anything by itself. Hosts call View to obtain
// the widget tree and Subscribe to learn when it must be redrawn.
package preview
