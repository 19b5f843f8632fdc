package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/cosmos-docs/livepreview/pkg/middleware"
	"github.com/cosmos-docs/livepreview/pkg/previews"
	"github.com/cosmos-docs/livepreview/pkg/theme"
)

// SessionParams describes the preview a new session mounts.
type SessionParams struct {
	Definition previews.Definition
	// Mode is the color scheme read from the upgrade request.
	Mode theme.Mode
	// Target is the DOM id of the widget the session patches.
	Target string
}

// ManagerStats summarizes session activity since the manager was created.
type ManagerStats struct {
	Active       int    `json:"active"`
	TotalCreated uint64 `json:"totalCreated"`
	TotalClosed  uint64 `json:"totalClosed"`
	Peak         int    `json:"peak"`
}

// SessionManager owns the open sessions and enforces the session limit.
type SessionManager struct {
	config      *SessionConfig
	maxSessions int
	chain       middleware.Middleware
	logger      *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
	stats    ManagerStats
}

// NewSessionManager creates a SessionManager. maxSessions of 0 means no
// limit; chain wraps every event of every session and may be nil.
func NewSessionManager(config *SessionConfig, maxSessions int, chain middleware.Middleware, logger *slog.Logger) *SessionManager {
	if config == nil {
		config = DefaultSessionConfig()
	}
	if chain == nil {
		chain = middleware.Chain()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		config:      config,
		maxSessions: maxSessions,
		chain:       chain,
		logger:      logger.With("component", "session_manager"),
		sessions:    map[string]*Session{},
	}
}

// Create mounts the preview for a new connection. The returned session has
// not been started.
func (sm *SessionManager) Create(conn *websocket.Conn, params SessionParams) (*Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.maxSessions > 0 && len(sm.sessions) >= sm.maxSessions {
		sm.logger.Warn("session limit reached", "max", sm.maxSessions)
		return nil, ErrMaxSessionsReached
	}

	id := uuid.NewString()
	session, err := newSession(conn, id, params, sm.config, sm.chain, sm.logger)
	if err != nil {
		return nil, err
	}
	session.onClose = func() { sm.remove(id) }
	sm.sessions[id] = session

	sm.stats.TotalCreated++
	sm.stats.Peak = max(sm.stats.Peak, len(sm.sessions))
	middleware.RecordSessionCreate()
	sm.logger.Debug("session created", "session_id", id, "preview", params.Definition.Name, "mode", params.Mode)
	return session, nil
}

// remove runs once per session, from Session.Close.
func (sm *SessionManager) remove(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if _, ok := sm.sessions[id]; !ok {
		return
	}
	delete(sm.sessions, id)
	sm.stats.TotalClosed++
	middleware.RecordSessionDestroy()
	sm.logger.Debug("session closed", "session_id", id)
}

// Get returns the open session with the given ID, or nil.
func (sm *SessionManager) Get(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

func (sm *SessionManager) Stats() ManagerStats {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	st := sm.stats
	st.Active = len(sm.sessions)
	return st
}

// Shutdown closes every open session in parallel. It returns ctx.Err() if
// ctx ends first.
func (sm *SessionManager) Shutdown(ctx context.Context) error {
	sm.mu.RLock()
	open := make([]*Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		open = append(open, s)
	}
	sm.mu.RUnlock()

	var g errgroup.Group
	for _, s := range open {
		g.Go(func() error {
			s.Close()
			return nil
		})
	}
	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case <-done:
		sm.logger.Info("sessions closed", "count", len(open))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
