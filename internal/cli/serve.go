package cli

import (
	"github.com/apiarycd/repostats/internal"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	Long: `Run the HTTP service. Configuration is read from the YAML file named by
CONFIG_PATH and from the environment.`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func runServe(_ *cobra.Command, _ []string) {
	internal.Run()
}
