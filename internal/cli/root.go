// Package cli implements the wjson command-line interface, a thin
// pass-through around the parser: it reads raw text from files or stdin
// and hands it unmodified to the engine, then reports the outcome.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the wjson CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "wjson",
		Short:        "wjson validates JSON documents",
		Long:         `wjson parses JSON documents with a strict grammar and reports the first violation with its line and column.`,
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

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCheckCmd())

	return root.ExecuteContext(context.Background())
}
