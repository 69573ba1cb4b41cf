package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/apiarycd/repostats/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCmd_UnsupportedFormat(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"analyze", "--format", "csv", "https://example.com/acme/widgets.git"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.ExecuteContext(context.Background())
	require.ErrorIs(t, err, report.ErrUnsupportedFormat)
}

func TestAnalyzeCmd_RequiresURL(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"analyze"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAnalyzeCmd_FormatFlag(t *testing.T) {
	flag := analyzeCmd.Flags().Lookup("format")
	require.NotNil(t, flag)

	assert.Equal(t, "json", flag.DefValue)
	assert.Equal(t, "f", flag.Shorthand)
	assert.Contains(t, flag.Usage, "markdown")
}
