package vango

// Listener is notified when a signal it read changes. Hosts react to
// MarkDirty by scheduling a redraw. ID deduplicates subscriptions and batch
// notifications.
type Listener interface {
	MarkDirty()
	ID() uint64
}

// ListenerFunc is a Listener calling a plain function.
type ListenerFunc struct {
	id uint64
	fn func()
}

func NewListenerFunc(fn func()) *ListenerFunc {
	return &ListenerFunc{id: nextID(), fn: fn}
}

func (l *ListenerFunc) MarkDirty() {
	if l.fn != nil {
		l.fn()
	}
}

func (l *ListenerFunc) ID() uint64 { return l.id }
