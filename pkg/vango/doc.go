// Package vango provides the reactive cells behind every preview widget.
//
// A Signal[T] holds one value. Reading it inside a tracked scope
// (WithListener) subscribes the scope's listener; writing it notifies every
// subscriber once per effective change:
//
//	selection := NewSignal(map[string]string{"variant": "contained"})
//	WithListener(host, func() { render(selection.Get()) })
//	selection.Set(next) // host.MarkDirty() is called
//
// # Batching
//
// Multiple writes can be coalesced into a single notification per listener:
//
//	Batch(func() {
//	    a.Set(1)
//	    b.Set(2)
//	})
//
// # Thread Safety
//
// Signals are safe for concurrent use. The tracking scope and batch depth
// are per-goroutine, so a host that renders on one goroutine and mutates on
// another must set up tracking on the rendering goroutine.
package vango
