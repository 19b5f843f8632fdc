package vango

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// trackingContext is the reactive state of one goroutine. It only exists
// while a listener is installed or a batch is open.
type trackingContext struct {
	currentListener Listener
	batchDepth      int
	pendingUpdates  []Listener
}

func (c *trackingContext) idle() bool {
	return c.currentListener == nil && c.batchDepth == 0 && len(c.pendingUpdates) == 0
}

var trackingContexts sync.Map // goroutine id -> *trackingContext

// goroutineID reads the id from the "goroutine <id> [" stack header.
func goroutineID() uint64 {
	var buf [64]byte
	header := bytes.TrimPrefix(buf[:runtime.Stack(buf[:], false)], []byte("goroutine "))
	if i := bytes.IndexByte(header, ' '); i >= 0 {
		header = header[:i]
	}
	id, _ := strconv.ParseUint(string(header), 10, 64)
	return id
}

func lookupContext() *trackingContext {
	if c, ok := trackingContexts.Load(goroutineID()); ok {
		return c.(*trackingContext)
	}
	return nil
}

func getTrackingContext() *trackingContext {
	c, _ := trackingContexts.LoadOrStore(goroutineID(), &trackingContext{})
	return c.(*trackingContext)
}

func releaseIfIdle(c *trackingContext) {
	if c.idle() {
		trackingContexts.Delete(goroutineID())
	}
}

func getCurrentListener() Listener {
	if c := lookupContext(); c != nil {
		return c.currentListener
	}
	return nil
}

func getBatchDepth() int {
	if c := lookupContext(); c != nil {
		return c.batchDepth
	}
	return 0
}

func queuePendingUpdate(l Listener) {
	c := getTrackingContext()
	c.pendingUpdates = append(c.pendingUpdates, l)
}

// WithListener runs fn with l installed on the calling goroutine, so that
// every Signal.Get inside fn subscribes l. A nil l disables tracking.
func WithListener(l Listener, fn func()) {
	c := getTrackingContext()
	prev := c.currentListener
	c.currentListener = l
	defer func() {
		c.currentListener = prev
		releaseIfIdle(c)
	}()
	fn()
}

// Untracked runs fn without subscribing anything to the signals it reads.
func Untracked(fn func()) { WithListener(nil, fn) }
