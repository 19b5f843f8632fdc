// Command cosmos-docs serves, exports and plays with the live previews of
// the COSMOS documentation.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cosmos-docs/livepreview/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗╔═╗╔═╗╔╦╗╔═╗╔═╗
  ║  ║ ║╚═╗║║║║ ║╚═╗
  ╚═╝╚═╝╚═╝╩ ╩╚═╝╚═╝
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "cosmos-docs",
		Short: "Live previews for the COSMOS documentation",
		Long: `cosmos-docs hosts the interactive previews of the COSMOS
documentation site.

Each preview renders a Galaxy component next to the code that
produces it. Readers pick options from the controls panel, toggle
the code and controls panels and copy the code to the clipboard.

  • Live previews over WebSocket
  • Static export to a directory or S3
  • Terminal playground`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file or directory (default: cosmos.json, cosmos.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(
		serveCmd(opts),
		listCmd(opts),
		renderCmd(opts),
		exportCmd(opts),
		playCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return rootCmd
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
