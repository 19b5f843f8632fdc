package vango

// Batch runs fn and defers notifications until the outermost Batch on this
// goroutine returns. Each affected listener is then marked dirty once, in
// the order it was first touched.
//
//	Batch(func() {
//	    selection.Set(next)
//	    codeVisible.Set(true)
//	})
func Batch(fn func()) {
	ctx := getTrackingContext()
	ctx.batchDepth++
	defer func() {
		ctx.batchDepth--
		if ctx.batchDepth > 0 {
			return
		}
		pending := ctx.pendingUpdates
		ctx.pendingUpdates = nil
		releaseIfIdle(ctx)
		markOnce(pending)
	}()
	fn()
}

func markOnce(listeners []Listener) {
	done := make(map[uint64]struct{}, len(listeners))
	for _, l := range listeners {
		if _, ok := done[l.ID()]; ok {
			continue
		}
		done[l.ID()] = struct{}{}
		l.MarkDirty()
	}
}
