package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cosmos-docs/livepreview/internal/config"
	"github.com/cosmos-docs/livepreview/internal/errors"
	"github.com/cosmos-docs/livepreview/internal/export"
	"github.com/cosmos-docs/livepreview/pkg/previews"
	"github.com/cosmos-docs/livepreview/pkg/server"
	"github.com/cosmos-docs/livepreview/pkg/theme"
)

type exportOptions struct {
	dir    string
	bucket string
	prefix string
	mode   string
}

func exportCmd(global *globalOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export static snapshots of every preview",
		Long: `Render every preview in its default state and write the pages,
embeddable fragments, code and a manifest to a directory or an
S3 bucket.

S3 credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
and AWS_SESSION_TOKEN.

Examples:
  cosmos-docs export
  cosmos-docs export --dir public/previews
  cosmos-docs export --bucket docs-site --prefix previews/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg, os.Stderr)

			opts.apply(cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			mode, err := theme.ParseMode(cfg.Theme.Default)
			if err != nil {
				return errors.New("E121").Wrap(err)
			}

			publisher, err := newPublisher(cfg.Export)
			if err != nil {
				return err
			}

			var groups []server.IndexGroup
			for _, g := range cfg.Site.Sidebar {
				groups = append(groups, server.IndexGroup{Title: g.Title, Previews: g.Previews})
			}

			exporter := export.New(publisher, export.Options{
				Mode:      mode,
				SiteTitle: cfg.Site.Title,
				Lang:      cfg.Site.Lang,
				Groups:    groups,
				Logger:    logger,
			})
			manifest, err := exporter.Export(cmd.Context(), previews.All())
			if err != nil {
				return errors.New("E150").Wrap(err)
			}

			out := cmd.OutOrStdout()
			success(out, "Exported %d previews (%d files)", len(manifest.Previews), len(manifest.Files))
			info(out, "%s", publisher.Location("index.html"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "o", "", "Output directory (default from config)")
	cmd.Flags().StringVar(&opts.bucket, "bucket", "", "S3 bucket; exports to S3 instead of a directory")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&opts.mode, "theme", "", "Color scheme of previews that follow the reader: light or dark")
	return cmd
}

func (o *exportOptions) apply(cfg *config.Config) {
	if o.dir != "" {
		cfg.Export.Dir = o.dir
	}
	if o.bucket != "" {
		cfg.Export.S3.Bucket = o.bucket
	}
	if o.prefix != "" {
		cfg.Export.S3.Prefix = o.prefix
	}
	if o.mode != "" {
		cfg.Theme.Default = o.mode
	}
}

// newPublisher returns an S3 publisher when a bucket is configured and a
// directory publisher otherwise.
func newPublisher(cfg config.ExportConfig) (export.Publisher, error) {
	if !cfg.S3.Enabled() {
		return export.DiskPublisher{Dir: cfg.Dir}, nil
	}
	client, err := export.NewS3Client(export.S3Options{
		Region:       cfg.S3.Region,
		Endpoint:     cfg.S3.Endpoint,
		UsePathStyle: cfg.S3.PathStyle,
	})
	if err != nil {
		return nil, errors.New("E151").Wrap(err)
	}
	return export.NewS3Publisher(client, cfg.S3.Bucket, cfg.S3.Prefix), nil
}
