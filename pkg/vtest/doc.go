// Package vtest provides testing helpers for preview widgets.
//
// # Render Assertions
//
// Assert on the rendered HTML of any node:
//
//	vtest.ExpectContains(t, h.Preview(), "galaxy-button--outlined")
//	vtest.ExpectAttribute(t, h.Preview(), "type", "button")
//
// # Driving a Widget
//
// A Widget renders a harness the way a live session does and dispatches
// events by hydration id, so tests exercise the same handler table the
// browser reaches:
//
//	w := vtest.Mount(t, h)
//	w.Select("variant", "outlined")
//	w.Click(`aria-controls="` + h.ID() + `-code"`)
//	vtest.ExpectNotContains(t, h.View(), "cosmos-preview__code")
package vtest
