package vango

import "sync/atomic"

var lastID atomic.Uint64

// nextID hands out process-unique, never reused ids for signals and
// listeners.
func nextID() uint64 { return lastID.Add(1) }

// NextListenerID allocates an ID for a Listener implemented outside this
// package.
func NextListenerID() uint64 { return nextID() }
