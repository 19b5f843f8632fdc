package preview

import (
	"context"
	"errors"
)

// ErrNoClipboard is reported when a copy is attempted without a clipboard.
var ErrNoClipboard = errors.New("preview: clipboard unavailable")

// Clipboard writes text to the platform clipboard. Implementations may
// deliver the write asynchronously; a returned error means the write failed
// before it was handed off.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(ctx context.Context, text string) error

// WriteText implements Clipboard.
func (f ClipboardFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// Notifier shows transient notifications.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, message string)

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, message string) {
	f(ctx, message)
}
