package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cosmos-docs/livepreview/internal/config"
	"github.com/cosmos-docs/livepreview/internal/errors"
	"github.com/cosmos-docs/livepreview/pkg/middleware"
	"github.com/cosmos-docs/livepreview/pkg/previews"
	"github.com/cosmos-docs/livepreview/pkg/server"
	"github.com/cosmos-docs/livepreview/pkg/theme"
)

type serveOptions struct {
	port        int
	host        string
	dev         bool
	maxSessions int
	theme       string
	noMetrics   bool
}

func serveCmd(global *globalOptions) *cobra.Command {
	opts := &serveOptions{maxSessions: -1}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live preview server",
		Long: `Start the live preview server.

Every registered preview is served as a standalone page and as an
embeddable fragment. The thin client opens one WebSocket per widget
and the server pushes a patch after each interaction.

Examples:
  cosmos-docs serve
  cosmos-docs serve --port=8080
  cosmos-docs serve --dev --theme=dark`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			srvConfig, err := opts.serverConfig(cfg)
			if err != nil {
				return err
			}

			printBanner(cmd.OutOrStdout())
			success(cmd.OutOrStdout(), "Serving %d previews at %s", len(previews.Names()), "http://"+srvConfig.Address)
			if srvConfig.MetricsPath != "" {
				info(cmd.OutOrStdout(), "Metrics at %s", srvConfig.MetricsPath)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, srvConfig)
		},
	}

	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&opts.host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVar(&opts.dev, "dev", false, "Disable client caching")
	cmd.Flags().IntVar(&opts.maxSessions, "max-sessions", -1, "Maximum concurrent live sessions, 0 for no limit (default from config)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Color scheme when the browser sends no hint: light or dark")
	cmd.Flags().BoolVar(&opts.noMetrics, "no-metrics", false, "Disable the Prometheus endpoint")

	return cmd
}

// serverConfig merges cfg and the flags into a server configuration.
func (o *serveOptions) serverConfig(cfg *config.Config) (*server.ServerConfig, error) {
	if o.port > 0 {
		cfg.Server.Port = o.port
	}
	if o.host != "" {
		cfg.Server.Host = o.host
	}
	if o.dev {
		cfg.Server.DevMode = true
	}
	if o.maxSessions >= 0 {
		cfg.Server.MaxSessions = o.maxSessions
	}
	if o.theme != "" {
		cfg.Theme.Default = o.theme
	}
	if o.noMetrics {
		cfg.Server.MetricsPath = ""
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mode, err := theme.ParseMode(cfg.Theme.Default)
	if err != nil {
		return nil, errors.New("E121").Wrap(err)
	}

	logger := newLogger(cfg, os.Stderr)

	srvConfig := server.DefaultServerConfig().
		WithAddress(cfg.Address()).
		WithMaxSessions(cfg.Server.MaxSessions).
		WithDevMode(cfg.Server.DevMode)
	srvConfig.SiteTitle = cfg.Site.Title
	srvConfig.Lang = cfg.Site.Lang
	srvConfig.DefaultTheme = mode
	srvConfig.MetricsPath = cfg.Server.MetricsPath
	srvConfig.Logger = logger
	if d := cfg.ReadTimeout(); d > 0 {
		srvConfig.SessionConfig.ReadTimeout = d
	}
	if d := cfg.WriteTimeout(); d > 0 {
		srvConfig.SessionConfig.WriteTimeout = d
	}
	for _, g := range cfg.Site.Sidebar {
		srvConfig.IndexGroups = append(srvConfig.IndexGroups, server.IndexGroup{
			Title:    g.Title,
			Previews: g.Previews,
		})
	}

	srvConfig.WithEventMiddleware(
		middleware.Logging(logger),
		middleware.OpenTelemetry(),
	)
	if srvConfig.MetricsPath != "" {
		srvConfig.WithEventMiddleware(middleware.Prometheus())
	}

	if err := srvConfig.ValidateConfig(); err != nil {
		return nil, errors.New("E121").Wrap(err)
	}
	return srvConfig, nil
}

func runServer(ctx context.Context, cfg *server.ServerConfig) error {
	srv := server.New(cfg)
	if err := srv.Start(ctx); err != nil {
		return errors.New("E160").
			WithDetail("Could not listen on " + cfg.Address + ".").
			Wrap(err)
	}
	return nil
}
