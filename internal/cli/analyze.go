package cli

import (
	"fmt"
	"strings"

	"github.com/apiarycd/repostats/internal"
	"github.com/apiarycd/repostats/internal/report"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Analyse a single repository and print the result",
	Example: `  repostats analyze https://github.com/hhatto/gocloc.git
  repostats analyze --format markdown https://github.com/hhatto/gocloc.git`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		writer, err := report.NewWriter(report.Format(format), cmd.OutOrStdout())
		if err != nil {
			return err //nolint:wrapcheck //already descriptive
		}

		return internal.Analyze(cmd.Context(), args[0], writer) //nolint:wrapcheck //already descriptive
	},
}

func init() {
	formats := lo.Map(report.Formats(), func(f report.Format, _ int) string { return string(f) })

	analyzeCmd.Flags().StringP(
		"format",
		"f",
		string(report.FormatJSON),
		fmt.Sprintf("Output format (%s)", strings.Join(formats, ", ")),
	)
}
