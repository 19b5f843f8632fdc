package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/cosmos-docs/livepreview/internal/config"
	"github.com/cosmos-docs/livepreview/internal/errors"
	"github.com/cosmos-docs/livepreview/pkg/previews"
)

// loadConfig loads the configuration named by --config. A directory is
// searched for the usual file names; no flag means the working directory.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = "."
	}

	var (
		cfg *config.Config
		err error
	)
	if fi, statErr := os.Stat(path); statErr == nil && fi.IsDir() {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFile(path)
	}
	if err != nil {
		return nil, err
	}

	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newLogger builds the process logger from the log section and installs it
// as the slog default.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// lookupPreview resolves name to a definition, as a coded error when it is
// not registered.
func lookupPreview(name string) (previews.Definition, error) {
	def, err := previews.Lookup(name)
	if err != nil {
		return previews.Definition{}, errors.New("E100").
			WithDetail("No preview is registered as " + name + ".").
			Wrap(err)
	}
	return def, nil
}
