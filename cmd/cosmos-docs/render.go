package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos-docs/livepreview/internal/errors"
	"github.com/cosmos-docs/livepreview/pkg/preview"
	"github.com/cosmos-docs/livepreview/pkg/server"
	"github.com/cosmos-docs/livepreview/pkg/theme"
)

func renderCmd(_ *globalOptions) *cobra.Command {
	var (
		sets   []string
		format string
		mode   string
	)

	cmd := &cobra.Command{
		Use:   "render <preview>",
		Short: "Print the code or HTML of a preview",
		Long: `Print the code a preview emits for a selection, its highlighted
code, or the HTML of its widget.

Controls not named with --set keep their first option.

Examples:
  cosmos-docs render button
  cosmos-docs render button --set variant=outlined --set disabled=true
  cosmos-docs render switch --format html --theme dark`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := lookupPreview(args[0])
			if err != nil {
				return err
			}
			overrides, err := parseSets(sets)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "code", "highlight":
				code, err := server.Code(def, overrides)
				if err != nil {
					return errors.FromError(err, "E101")
				}
				if format == "highlight" {
					code = preview.Highlight(code)
				}
				_, err = fmt.Fprintln(out, code)
				return err

			case "html":
				m, err := theme.ParseMode(mode)
				if err != nil {
					return err
				}
				var b strings.Builder
				if err := server.WriteEmbed(&b, def, m, server.PageOptions{}); err != nil {
					return errors.FromError(err, "E101")
				}
				_, err = fmt.Fprintln(out, b.String())
				return err

			default:
				return fmt.Errorf("unknown format %q: use code, html or highlight", format)
			}
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Select an option: control=value (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", "code", "Output: code, highlight or html")
	cmd.Flags().StringVar(&mode, "theme", "light", "Color scheme for html output: light or dark")
	return cmd
}

// parseSets turns control=value pairs into a selection override.
func parseSets(sets []string) (map[string]string, error) {
	overrides := make(map[string]string, len(sets))
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q: want control=value", s)
		}
		overrides[name] = value
	}
	return overrides, nil
}
