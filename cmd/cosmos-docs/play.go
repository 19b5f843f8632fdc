package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cosmos-docs/livepreview/internal/errors"
	"github.com/cosmos-docs/livepreview/internal/tui"
	"github.com/cosmos-docs/livepreview/pkg/previews"
	"github.com/cosmos-docs/livepreview/pkg/theme"
)

func playCmd(global *globalOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "play [preview]",
		Short: "Explore previews in the terminal",
		Long: `Open the terminal playground. Move between controls with the
arrow keys, toggle the code and controls panels with c and p, copy
the code with y and switch previews with tab.

Examples:
  cosmos-docs play
  cosmos-docs play switch --theme dark`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			if mode == "" {
				mode = cfg.Theme.Default
			}
			m, err := theme.ParseMode(mode)
			if err != nil {
				return errors.New("E121").Wrap(err)
			}

			var start string
			if len(args) == 1 {
				def, err := lookupPreview(args[0])
				if err != nil {
					return err
				}
				start = def.Name
			}

			// The terminal is owned by the program; logs would corrupt it.
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			return tui.Run(previews.All(), tui.Options{
				Start:  start,
				Mode:   m,
				Logger: logger,
			})
		},
	}

	cmd.Flags().StringVar(&mode, "theme", "", "Color scheme: light or dark (default from config)")
	return cmd
}
