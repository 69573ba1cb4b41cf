package report

import (
	"fmt"
	"io"

	"github.com/apiarycd/repostats/internal/stats"
	"gopkg.in/yaml.v3"
)

type YAMLWriter struct {
	output io.Writer
}

func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{output: output}
}

func (w *YAMLWriter) Write(response *stats.Response) error {
	encoder := yaml.NewEncoder(w.output)
	encoder.SetIndent(2) //nolint:mnd //two spaces

	if err := encoder.Encode(response); err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush yaml report: %w", err)
	}

	return nil
}
