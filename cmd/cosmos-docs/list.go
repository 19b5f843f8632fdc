package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cosmos-docs/livepreview/pkg/previews"
)

type previewInfo struct {
	Name          string   `json:"name"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	FollowsScheme bool     `json:"followsScheme"`
	Controls      []string `json:"controls"`
}

func listCmd(_ *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered previews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []previewInfo
			for _, d := range previews.All() {
				info := previewInfo{
					Name:          d.Name,
					Title:         d.Title,
					Description:   d.Description,
					FollowsScheme: d.FollowsScheme,
				}
				for _, c := range d.Controls {
					info.Controls = append(info.Controls, c.Name)
				}
				infos = append(infos, info)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTITLE\tSCHEME\tCONTROLS")
			for _, i := range infos {
				scheme := "light"
				if i.FollowsScheme {
					scheme = "reader"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", i.Name, i.Title, scheme, strings.Join(i.Controls, ", "))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
