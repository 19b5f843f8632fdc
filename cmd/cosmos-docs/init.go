package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cosmos-docs/livepreview/internal/config"
	"github.com/cosmos-docs/livepreview/pkg/previews"
)

func initCmd() *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the defaults",
		Long: `Write cosmos.json or cosmos.yaml in the working directory with
the default settings and one sidebar group listing every preview.

Examples:
  cosmos-docs init
  cosmos-docs init --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			switch format {
			case "json":
				path = "cosmos.json"
			case "yaml":
				path = "cosmos.yaml"
			default:
				return fmt.Errorf("unknown format %q: use json or yaml", format)
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := config.New()
			cfg.Site.Sidebar = []config.SidebarGroup{
				{Title: "Componentes", Previews: previews.Names()},
			}
			if err := cfg.SaveTo(path); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Created %s", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "File format: json or yaml")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
