package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/cosmos-docs/livepreview/pkg/previews"
	"github.com/cosmos-docs/livepreview/pkg/protocol"
	"github.com/cosmos-docs/livepreview/pkg/theme"
)

type definitionKey struct{}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.HandleFunc(ClientPath, s.serveThinClient)
	r.HandleFunc(StylesheetPath, s.serveStylesheet)

	r.Route("/previews/{name}", func(r chi.Router) {
		r.Use(s.withDefinition)
		r.Get("/", s.handlePage)
		r.Get("/embed", s.handleEmbed)
		r.Get("/code", s.handleCode)
		r.Get("/ws", s.HandleWebSocket)
	})

	if s.config.MetricsPath != "" {
		r.Handle(s.config.MetricsPath, s.config.MetricsHandler)
	}
	return r
}

// withDefinition resolves the {name} URL parameter to a registered preview.
func (s *Server) withDefinition(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		def, err := previews.Lookup(chi.URLParam(r, "name"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), definitionKey{}, def)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func definitionFrom(ctx context.Context) previews.Definition {
	def, _ := ctx.Value(definitionKey{}).(previews.Definition)
	return def
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Status   string       `json:"status"`
		Sessions ManagerStats `json:"sessions"`
	}{
		Status:   "ok",
		Sessions: s.sessions.Stats(),
	})
}

// HandleWebSocket upgrades the request and starts a session for the preview
// widget named by the "target" query parameter.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	def := definitionFrom(r.Context())
	target := r.URL.Query().Get("target")
	if !ValidTarget(target) {
		http.Error(w, "invalid target", http.StatusBadRequest)
		return
	}

	// Read the scheme before the upgrade: the request is gone afterwards.
	mode := theme.ModeFromRequest(r, s.config.DefaultTheme)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	session, err := s.sessions.Create(conn, SessionParams{
		Definition: def,
		Mode:       mode,
		Target:     target,
	})
	if err != nil {
		code := protocol.CodeServerError
		if errors.Is(err, ErrMaxSessionsReached) {
			code = protocol.CodeSessionClosed
		}
		s.logger.Warn("session rejected", "preview", def.Name, "error", err)
		if data, encErr := protocol.Encode(protocol.NewFatalError(code, err.Error())); encErr == nil {
			_ = conn.WriteMessage(websocket.TextMessage, data)
		}
		conn.Close()
		return
	}

	session.Start()
}
