package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mboehme/rfsee/pkg/buildinfo"
)

// Execute runs the rfsee CLI and returns an error if any command fails.
// This is the main entry point for the CLI application. The caller provides
// the base context; cancelling it (e.g. on SIGINT) stops in-flight work.
//
// The function sets up the root command with all subcommands (build, graph,
// extract, serve), configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "rfsee",
		Short:        "rfsee builds a browsable map of RFC relationships",
		Long:         `rfsee reads the RFC index and the plain-text RFC corpus, extracts which documents cite which, and renders the relationship graph of every RFC as linked DOT/SVG/HTML pages.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
