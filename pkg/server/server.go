package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cosmos-docs/livepreview/pkg/middleware"
)

// Server hosts preview pages, embeds, code and live sessions.
type Server struct {
	config   *ServerConfig
	sessions *SessionManager
	upgrader websocket.Upgrader
	router   chi.Router
	logger   *slog.Logger

	mu   sync.Mutex
	http *http.Server
}

// New creates a Server from a copy of config. A nil config uses
// DefaultServerConfig.
func New(config *ServerConfig) *Server {
	if config == nil {
		config = DefaultServerConfig()
	} else {
		config = config.Clone()
	}
	config.applyDefaults()
	if config.MetricsHandler == nil {
		config.MetricsHandler = promhttp.Handler()
	}

	s := &Server{
		config:   config,
		logger:   config.Logger.With("component", "server"),
		sessions: NewSessionManager(config.SessionConfig, config.MaxSessions, middleware.Chain(config.EventMiddleware...), config.Logger),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
	}
	s.router = s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) Sessions() *SessionManager { return s.sessions }

// Start validates the configuration, listens on its address and serves
// until ctx ends or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	if err := s.config.ValidateConfig(); err != nil {
		return err
	}
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln. When ctx ends the server shuts down
// gracefully and Serve returns the result of Shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}
	s.mu.Lock()
	s.http = srv
	s.mu.Unlock()

	served := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "address", ln.Addr().String())
		served <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown(context.Background())
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Shutdown closes the sessions first, then the HTTP server. The whole
// shutdown is bounded by ShutdownTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if err := s.sessions.Shutdown(ctx); err != nil {
		s.logger.Warn("sessions still open at shutdown", "error", err)
	}

	s.mu.Lock()
	srv := s.http
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Error("http shutdown failed", "error", err)
		return err
	}
	s.logger.Info("stopped")
	return nil
}
