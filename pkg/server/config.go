package server

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cosmos-docs/livepreview/pkg/middleware"
	"github.com/cosmos-docs/livepreview/pkg/theme"
)

// SessionConfig tunes a single WebSocket session. Zero fields take the
// values of DefaultSessionConfig.
type SessionConfig struct {
	// ReadTimeout closes a silent connection. Every message or pong
	// restarts it.
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	HeartbeatInterval time.Duration
	// MaxMessageSize limits one incoming frame, in bytes.
	MaxMessageSize int64
	// MaxEventQueue is how many decoded messages may wait for dispatch.
	MaxEventQueue int
}

func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		ReadTimeout:       time.Minute,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		MaxMessageSize:    4 << 10,
		MaxEventQueue:     64,
	}
}

func (c *SessionConfig) Clone() *SessionConfig {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// ServerConfig configures the preview host. Zero fields are filled from
// DefaultServerConfig when the server is created.
type ServerConfig struct {
	Address         string
	ReadBufferSize  int
	WriteBufferSize int
	// CheckOrigin accepts or rejects a WebSocket upgrade. Defaults to
	// SameOriginCheck.
	CheckOrigin   func(r *http.Request) bool
	SessionConfig *SessionConfig

	// HTTP server timeouts. Zero disables a limit.
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration

	// MaxSessions caps concurrent sessions. 0 means no limit.
	MaxSessions int

	// DevMode stops browsers from caching the thin client.
	DevMode bool

	// MetricsPath serves MetricsHandler (promhttp.Handler by default).
	// Empty disables the endpoint.
	MetricsPath    string
	MetricsHandler http.Handler

	// DefaultTheme applies when a request carries no color-scheme hint.
	DefaultTheme theme.Mode
	SiteTitle    string
	Lang         string
	IndexGroups  []IndexGroup

	// EventMiddleware wraps every client event. The first entry is the
	// outermost.
	EventMiddleware []middleware.Middleware

	Logger *slog.Logger
}

func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           ":8080",
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		CheckOrigin:       SameOriginCheck,
		SessionConfig:     DefaultSessionConfig(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       2 * time.Minute,
		ShutdownTimeout:   30 * time.Second,
		MetricsPath:       "/metrics",
		DefaultTheme:      theme.Light,
		SiteTitle:         "COSMOS",
		Lang:              "es",
	}
}

// SameOriginCheck accepts upgrades without an Origin header and those
// whose Origin host equals the request host.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	return err == nil && r.Host != "" && u.Host == r.Host
}

// Clone copies c deeply enough that the copy can be modified freely.
func (c *ServerConfig) Clone() *ServerConfig {
	if c == nil {
		return nil
	}
	cp := *c
	cp.SessionConfig = c.SessionConfig.Clone()
	cp.EventMiddleware = append([]middleware.Middleware(nil), c.EventMiddleware...)
	cp.IndexGroups = append([]IndexGroup(nil), c.IndexGroups...)
	return &cp
}

func (c *ServerConfig) WithAddress(addr string) *ServerConfig {
	c.Address = addr
	return c
}

func (c *ServerConfig) WithMaxSessions(n int) *ServerConfig {
	c.MaxSessions = n
	return c
}

func (c *ServerConfig) WithDevMode(dev bool) *ServerConfig {
	c.DevMode = dev
	return c
}

func (c *ServerConfig) WithEventMiddleware(mws ...middleware.Middleware) *ServerConfig {
	c.EventMiddleware = append(c.EventMiddleware, mws...)
	return c
}

// ValidateConfig reports every setting that would make the server
// unusable, joined into one error.
func (c *ServerConfig) ValidateConfig() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New("server: "+msg))
		}
	}
	check(c.Address != "", "address is required")
	check(c.MaxSessions >= 0, "max sessions must not be negative")
	check(c.MetricsPath == "" || strings.HasPrefix(c.MetricsPath, "/"), "metrics path must start with /")
	check(c.SessionConfig == nil || c.SessionConfig.MaxEventQueue >= 0, "event queue size must not be negative")
	return errors.Join(errs...)
}

func orDefault[T comparable](v *T, def T) {
	var zero T
	if *v == zero {
		*v = def
	}
}

func (c *ServerConfig) applyDefaults() {
	def := DefaultServerConfig()
	orDefault(&c.Address, def.Address)
	orDefault(&c.ReadBufferSize, def.ReadBufferSize)
	orDefault(&c.WriteBufferSize, def.WriteBufferSize)
	orDefault(&c.ShutdownTimeout, def.ShutdownTimeout)
	orDefault(&c.DefaultTheme, def.DefaultTheme)
	orDefault(&c.Lang, def.Lang)
	orDefault(&c.Logger, slog.Default())
	if c.CheckOrigin == nil {
		c.CheckOrigin = def.CheckOrigin
	}
	if c.SessionConfig == nil {
		c.SessionConfig = def.SessionConfig
	}

	sc, sdef := c.SessionConfig, def.SessionConfig
	orDefault(&sc.ReadTimeout, sdef.ReadTimeout)
	orDefault(&sc.WriteTimeout, sdef.WriteTimeout)
	orDefault(&sc.HeartbeatInterval, sdef.HeartbeatInterval)
	orDefault(&sc.MaxMessageSize, sdef.MaxMessageSize)
	orDefault(&sc.MaxEventQueue, sdef.MaxEventQueue)
}
