package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/apiarycd/repostats/internal/stats"
)

// JSONWriter writes the same document the HTTP API returns, indented.
type JSONWriter struct {
	output io.Writer
}

func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{output: output}
}

func (w *JSONWriter) Write(response *stats.Response) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(response); err != nil {
		return fmt.Errorf("failed to encode json report: %w", err)
	}

	return nil
}
