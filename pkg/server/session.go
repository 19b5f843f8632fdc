package server

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cosmos-docs/livepreview/pkg/middleware"
	"github.com/cosmos-docs/livepreview/pkg/preview"
	"github.com/cosmos-docs/livepreview/pkg/previews"
	"github.com/cosmos-docs/livepreview/pkg/protocol"
	"github.com/cosmos-docs/livepreview/pkg/render"
	"github.com/cosmos-docs/livepreview/pkg/toast"
	"github.com/cosmos-docs/livepreview/pkg/vango"
	"github.com/cosmos-docs/livepreview/pkg/vdom"
)

// targetPattern matches widget ids issued by preview.New.
var targetPattern = regexp.MustCompile(`^cp-[A-Za-z0-9-]{1,40}$`)

// ValidTarget reports whether id could be a widget id.
func ValidTarget(id string) bool {
	return targetPattern.MatchString(id)
}

// Session is one live preview connection.
type Session struct {
	// ID is the unique session identifier.
	ID string

	preview previews.Definition
	conn    *websocket.Conn
	config  *SessionConfig
	chain   middleware.Middleware

	harness  *preview.Harness
	renderer *render.Renderer

	// listener is subscribed to every signal read by the last render.
	listener *vango.ListenerFunc
	dirty    atomic.Bool
	unsub    func()

	// seq is the sequence number of the last patch sent.
	seq atomic.Uint64

	events chan *protocol.ClientMessage
	done   chan struct{}
	closed atomic.Bool

	// mu serializes writes to conn.
	mu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc

	CreatedAt  time.Time
	lastActive atomic.Int64

	onClose func()
	logger  *slog.Logger
}

func newSession(conn *websocket.Conn, id string, params SessionParams, config *SessionConfig, chain middleware.Middleware, logger *slog.Logger) (*Session, error) {
	if !ValidTarget(params.Target) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, params.Target)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		ID:        id,
		preview:   params.Definition,
		conn:      conn,
		config:    config,
		chain:     chain,
		renderer:  render.NewRenderer(render.RendererConfig{}),
		events:    make(chan *protocol.ClientMessage, config.MaxEventQueue),
		done:      make(chan struct{}),
		ctx:       ctx,
		cancel:    cancel,
		CreatedAt: time.Now(),
	}
	s.logger = logger.With("component", "session",
		"session_id", id,
		"preview", params.Definition.Name,
		"mode", params.Mode.String())
	s.touch()
	s.listener = vango.NewListenerFunc(s.markDirty)

	h, err := params.Definition.Mount(params.Mode,
		preview.WithClipboard(s),
		preview.WithNotifier(toast.Notifier{Emitter: s}),
		preview.WithLogger(s.logger),
		preview.WithID(params.Target),
		preview.WithContext(ctx),
	)
	if err != nil {
		cancel()
		return nil, err
	}
	s.harness = h
	s.unsub = h.Subscribe(s.markDirty)
	return s, nil
}

// Harness returns the mounted harness.
func (s *Session) Harness() *preview.Harness { return s.harness }

// Preview returns the name of the mounted preview.
func (s *Session) Preview() string { return s.preview.Name }

// LastActive returns the time of the last client message.
func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

// Seq returns the sequence number of the last patch sent.
func (s *Session) Seq() uint64 { return s.seq.Load() }

// IsClosed reports whether the session has been closed.
func (s *Session) IsClosed() bool { return s.closed.Load() }

func (s *Session) touch() {
	s.lastActive.Store(time.Now().UnixNano())
}

func (s *Session) markDirty() {
	s.dirty.Store(true)
}

// handleMessage runs on the event loop.
func (s *Session) handleMessage(msg *protocol.ClientMessage) {
	switch msg.Type {
	case protocol.TypeEvent:
		s.handleEvent(msg)
	case protocol.TypeCopyResult:
		s.handleCopyResult(msg)
	case protocol.TypePing:
		_ = s.send(protocol.NewPong())
	}
}

// handleEvent dispatches a DOM event to the handler the last render
// registered for it and sends a patch when state changed.
func (s *Session) handleEvent(msg *protocol.ClientMessage) {
	if current := s.seq.Load(); msg.Seq < current {
		s.logger.Debug("dropping stale event",
			"hid", msg.HID,
			"event", msg.Event,
			"seq", msg.Seq,
			"current", current)
		return
	}

	handler, ok := s.renderer.Handler(msg.HID, msg.Event)
	if !ok {
		s.logger.Warn("handler not found", "hid", msg.HID, "event", msg.Event)
		s.sendErrorMessage(protocol.CodeHandlerNotFound, "Handler not found")
		return
	}

	ev := &middleware.Event{
		Context:   s.ctx,
		SessionID: s.ID,
		Preview:   s.preview.Name,
		HID:       msg.HID,
		DOMEvent:  msg.Event,
		Meta:      handler.Meta,
	}

	s.dirty.Store(false)
	run := s.chain(func(*middleware.Event) error {
		return s.safeExecute(handler.Handler, ev)
	})
	if err := run(ev); err != nil {
		s.logger.Debug("event returned error", "error", err)
	}

	if s.dirty.Swap(false) {
		s.flush()
	}
}

func (s *Session) handleCopyResult(msg *protocol.ClientMessage) {
	if msg.OK {
		middleware.RecordCopy(s.preview.Name, middleware.CopySucceeded)
		s.logger.Debug("clipboard write confirmed")
		return
	}
	middleware.RecordCopy(s.preview.Name, middleware.CopyFailed)
	s.logger.Warn("clipboard write failed on client", "error", msg.Error)
}

// safeExecute runs a handler with panic recovery.
func (s *Session) safeExecute(fn func(), ev *middleware.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			s.logger.Error("handler panic",
				"panic", r,
				"hid", ev.HID,
				"action", ev.Action(),
				"stack", string(stack))

			s.sendErrorMessage(protocol.CodeHandlerPanic, "Internal error")
			err = fmt.Errorf("%w: %v", middleware.ErrHandlerPanic, r)
		}
	}()

	if fn != nil {
		fn()
	}
	return nil
}

// flush renders the whole widget and sends it as one patch. The render
// registers the handlers used to dispatch the next events.
func (s *Session) flush() {
	html, err := s.renderWidget()
	if err != nil {
		s.logger.Error("render failed", "error", err)
		s.sendErrorMessage(protocol.CodeServerError, "Render failed")
		return
	}

	seq := s.seq.Add(1)
	if err := s.send(protocol.NewPatch(s.harness.ID(), html, seq)); err != nil {
		return
	}
	middleware.RecordPatches(1)
}

func (s *Session) renderWidget() (html string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("render panic",
				"panic", r,
				"stack", string(debug.Stack()))
			err = fmt.Errorf("%w: %v", middleware.ErrHandlerPanic, r)
		}
	}()

	var node *vdom.VNode
	vango.WithListener(s.listener, func() {
		node = s.harness.View()
	})

	s.renderer.Reset()
	return s.renderer.RenderToString(node)
}

// WriteText asks the client to write text to the system clipboard. The
// outcome arrives later as a copy-result message.
func (s *Session) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		middleware.RecordCopy(s.preview.Name, middleware.CopyUnavailable)
		return err
	}
	if err := s.send(protocol.NewClipboard(text)); err != nil {
		middleware.RecordCopy(s.preview.Name, middleware.CopyUnavailable)
		return fmt.Errorf("%w: %v", preview.ErrNoClipboard, err)
	}
	middleware.RecordCopy(s.preview.Name, middleware.CopyRequested)
	return nil
}

// Emit forwards a custom event to the client, where it is dispatched on
// window.
func (s *Session) Emit(name string, detail any) {
	if err := s.send(protocol.NewCustomEvent(name, detail)); err != nil {
		s.logger.Debug("event not delivered", "name", name, "error", err)
	}
}

// send encodes and writes a server message.
func (s *Session) send(msg any) error {
	data, err := protocol.Encode(msg)
	if err != nil {
		s.logger.Error("encode error", "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return ErrSessionClosed
	}
	if s.conn == nil {
		return ErrSessionClosed
	}

	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		middleware.RecordWebSocketError("write")
		s.logger.Warn("write error", "error", err)
		return err
	}
	return nil
}

// sendErrorMessage sends a non-fatal error to the client.
func (s *Session) sendErrorMessage(code protocol.ErrorCode, message string) {
	_ = s.send(protocol.NewError(code, message))
}

// Close gracefully closes the session.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}

	close(s.done)
	s.cancel()

	if s.unsub != nil {
		s.unsub()
	}
	s.harness.Dispose()

	s.mu.Lock()
	if s.conn != nil {
		s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		s.conn.Close()
	}
	s.mu.Unlock()

	s.logger.Info("session closed",
		"duration", time.Since(s.CreatedAt),
		"patches", s.seq.Load())

	if s.onClose != nil {
		s.onClose()
	}
}
