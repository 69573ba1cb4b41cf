// Package cli contains the repostats commands, built with Cobra.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apiarycd/repostats/internal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "repostats",
	Short: "Per-language line statistics for remote git repositories.",
	Long: `repostats shallow clones a git repository into a temporary directory, counts
code, comment and blank lines per language and removes the clone afterwards.

Without a subcommand it runs the HTTP service.`,
	Version:      internal.Version,
	SilenceUsage: true,
	Run:          runServe,
}

// Execute runs the root command. It is called once from main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, analyzeCmd)
}
