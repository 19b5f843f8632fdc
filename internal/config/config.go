package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cosmos-docs/livepreview/internal/errors"
)

const (
	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultExportDir is the default static export directory.
	DefaultExportDir = "dist/previews"
)

// FileNames are the configuration files Load looks for, in order.
var FileNames = []string{"cosmos.json", "cosmos.yaml", "cosmos.yml"}

// Config represents the complete configuration.
type Config struct {
	Site   SiteConfig   `json:"site" yaml:"site"`
	Server ServerConfig `json:"server" yaml:"server"`
	Theme  ThemeConfig  `json:"theme" yaml:"theme"`
	Export ExportConfig `json:"export" yaml:"export"`
	Log    LogConfig    `json:"log" yaml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// SiteConfig describes the documentation site that embeds the previews.
type SiteConfig struct {
	Title string `json:"title" yaml:"title" validate:"required"`

	// Lang is the BCP 47 language of rendered pages.
	Lang string `json:"lang" yaml:"lang" validate:"required,bcp47_language_tag"`

	// Sidebar groups previews on the index page, mirroring the
	// documentation site navigation.
	Sidebar []SidebarGroup `json:"sidebar,omitempty" yaml:"sidebar,omitempty" validate:"dive"`
}

// SidebarGroup is one titled group of previews.
type SidebarGroup struct {
	Title    string   `json:"title" yaml:"title" validate:"required"`
	Previews []string `json:"previews" yaml:"previews" validate:"required,min=1,dive,required"`
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port" validate:"min=1,max=65535"`

	// DevMode disables client caching.
	DevMode bool `json:"devMode,omitempty" yaml:"devMode,omitempty"`

	// MaxSessions caps concurrent live sessions. 0 means no limit.
	MaxSessions int `json:"maxSessions,omitempty" yaml:"maxSessions,omitempty" validate:"min=0"`

	// ReadTimeout and WriteTimeout bound WebSocket reads and writes
	// (e.g., "60s").
	ReadTimeout  string `json:"readTimeout,omitempty" yaml:"readTimeout,omitempty" validate:"omitempty,duration"`
	WriteTimeout string `json:"writeTimeout,omitempty" yaml:"writeTimeout,omitempty" validate:"omitempty,duration"`

	// MetricsPath exposes Prometheus metrics. Empty disables them.
	MetricsPath string `json:"metricsPath,omitempty" yaml:"metricsPath,omitempty" validate:"omitempty,startswith=/"`
}

// ThemeConfig contains color scheme settings.
type ThemeConfig struct {
	// Default is used when the reader's scheme is unknown.
	Default string `json:"default" yaml:"default" validate:"oneof=light dark"`
}

// ExportConfig contains static export settings.
type ExportConfig struct {
	Dir string         `json:"dir" yaml:"dir" validate:"required"`
	S3  S3ExportConfig `json:"s3,omitempty" yaml:"s3,omitempty"`
}

// S3ExportConfig selects an S3 bucket as export destination.
type S3ExportConfig struct {
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Region string `json:"region,omitempty" yaml:"region,omitempty" validate:"required_with=Bucket"`

	// Endpoint overrides the S3 endpoint, for S3 compatible stores.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" validate:"omitempty,url"`

	// PathStyle forces path-style addressing.
	PathStyle bool `json:"pathStyle,omitempty" yaml:"pathStyle,omitempty"`
}

// Enabled reports whether a bucket is configured.
func (c S3ExportConfig) Enabled() bool {
	return c.Bucket != ""
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `json:"format" yaml:"format" validate:"oneof=text json"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Site: SiteConfig{
			Title: "COSMOS",
			Lang:  "es",
		},
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			ReadTimeout:  "60s",
			WriteTimeout: "10s",
			MetricsPath:  "/metrics",
		},
		Theme: ThemeConfig{
			Default: "light",
		},
		Export: ExportConfig{
			Dir: DefaultExportDir,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the first configuration file found in dir. Without one it
// returns the defaults.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	cfg := New()
	return cfg, cfg.Validate()
}

// LoadFile reads configuration from the specified file path. The format
// follows the extension: .yaml and .yml are YAML, anything else JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No configuration file at " + path)
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E120").
			WithDetail(fmt.Sprintf("Failed to parse %s: %v", filepath.Base(path), err))
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// SaveTo writes the configuration to path in the format its extension
// selects.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("E120").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from, or "" for
// defaults.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for fields a file left empty.
func (c *Config) applyDefaults() {
	def := New()
	if c.Site.Title == "" {
		c.Site.Title = def.Site.Title
	}
	if c.Site.Lang == "" {
		c.Site.Lang = def.Site.Lang
	}
	if c.Server.Host == "" {
		c.Server.Host = def.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Theme.Default == "" {
		c.Theme.Default = def.Theme.Default
	}
	if c.Export.Dir == "" {
		c.Export.Dir = def.Export.Dir
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the base URL of the preview server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// ReadTimeout returns the parsed server read timeout, or 0 when unset.
func (c *Config) ReadTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.ReadTimeout)
	return d
}

// WriteTimeout returns the parsed server write timeout, or 0 when unset.
func (c *Config) WriteTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.WriteTimeout)
	return d
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
