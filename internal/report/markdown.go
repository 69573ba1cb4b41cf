package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/apiarycd/repostats/internal/stats"
	"github.com/nao1215/markdown"
)

// MarkdownWriter renders a per-language table with a total row.
type MarkdownWriter struct {
	output io.Writer
}

func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

func (w *MarkdownWriter) Write(response *stats.Response) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Repository statistics")
	md.PlainText("")
	md.PlainTextf("Origin: `%s`", response.Origin)
	md.PlainText("")

	if len(response.Stats) == 0 {
		md.PlainText("No source files detected.")
		md.PlainText("")
	}

	rows := make([][]string, 0, len(response.Stats)+1)
	for _, entry := range response.Stats {
		rows = append(rows, statRow(entry.Language, entry.Stat))
	}
	rows = append(rows, statRow("**Total**", response.Total))

	md.Table(markdown.TableSet{
		Header: []string{"Language", "Files", "Lines", "Code", "Comments", "Blanks"},
		Rows:   rows,
	})

	if err := md.Build(); err != nil {
		return fmt.Errorf("failed to build markdown report: %w", err)
	}

	return nil
}

func statRow(name string, stat stats.LanguageStat) []string {
	return []string{
		name,
		strconv.Itoa(stat.Files),
		strconv.Itoa(stat.Lines),
		strconv.Itoa(stat.Codes),
		strconv.Itoa(stat.Comments),
		strconv.Itoa(stat.Blanks),
	}
}
