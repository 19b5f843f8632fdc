package vango

import (
	"reflect"
	"sync"
)

// subscribers is the listener set of one signal. Listeners are keyed by ID,
// so reading a signal twice in one scope subscribes once, and notified in
// subscription order.
type subscribers struct {
	mu    sync.Mutex
	order []uint64
	byID  map[uint64]Listener
}

func (s *subscribers) add(l Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byID == nil {
		s.byID = make(map[uint64]Listener)
	}
	id := l.ID()
	if _, ok := s.byID[id]; ok {
		return
	}
	s.byID[id] = l
	s.order = append(s.order, id)
}

func (s *subscribers) remove(l Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := l.ID()
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *subscribers) drop() {
	s.mu.Lock()
	s.order, s.byID = nil, nil
	s.mu.Unlock()
}

func (s *subscribers) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// snapshot copies the listeners so none of them runs under the lock.
func (s *subscribers) snapshot() []Listener {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// notify marks every listener dirty, or queues them while a Batch is open
// on this goroutine.
func notify(listeners []Listener) {
	if getBatchDepth() > 0 {
		for _, l := range listeners {
			queuePendingUpdate(l)
		}
		return
	}
	for _, l := range listeners {
		l.MarkDirty()
	}
}

// Signal is a reactive value container.
// Reading a Signal with Get inside WithListener subscribes that listener to
// future changes.
type Signal[T any] struct {
	id   uint64
	subs subscribers

	mu    sync.RWMutex
	value T

	// equal decides whether a write is a change. Nil uses sameValue.
	equal func(T, T) bool
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{id: nextID(), value: initial}
}

// Get returns the current value and subscribes the current listener, if any.
func (s *Signal[T]) Get() T {
	value := s.Peek()
	if l := getCurrentListener(); l != nil {
		s.subs.add(l)
	}
	return value
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores value and notifies subscribers if it differs from the current
// one.
func (s *Signal[T]) Set(value T) {
	s.Update(func(T) T { return value })
}

// Update replaces the value with fn(current) under the write lock and
// notifies subscribers if it changed.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	next := fn(s.value)
	changed := !s.same(s.value, next)
	if changed {
		s.value = next
	}
	s.mu.Unlock()

	if changed {
		notify(s.subs.snapshot())
	}
}

// WithEquals sets the equality used to detect changes and returns s.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// Subscribe registers l explicitly and returns a function that removes it.
func (s *Signal[T]) Subscribe(l Listener) (unsubscribe func()) {
	s.subs.add(l)
	return func() { s.subs.remove(l) }
}

// Unsubscribe removes l from the subscribers.
func (s *Signal[T]) Unsubscribe(l Listener) {
	s.subs.remove(l)
}

// Reset drops every subscriber. Used when the owner of the signal unmounts.
func (s *Signal[T]) Reset() {
	s.subs.drop()
}

// Subscribers returns the number of subscribed listeners.
func (s *Signal[T]) Subscribers() int {
	return s.subs.len()
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

func (s *Signal[T]) same(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return sameValue(a, b)
}

// sameValue compares scalars with == and everything else (maps, slices,
// structs) structurally.
func sameValue[T any](a, b T) bool {
	va, vb := any(a), any(b)
	if t := reflect.TypeOf(va); t != nil {
		switch t.Kind() {
		case reflect.Bool, reflect.String,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return va == vb
		}
	}
	return reflect.DeepEqual(va, vb)
}
