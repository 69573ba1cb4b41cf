package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apiarycd/repostats/internal/stats"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formats lists the supported output formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatMarkdown}
}

// Writer renders an analysis result.
type Writer interface {
	Write(response *stats.Response) error
}

// NewWriter returns the writer for format. Format names are case-insensitive.
func NewWriter(format Format, output io.Writer) (Writer, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatJSON:
		return NewJSONWriter(output), nil
	case FormatYAML:
		return NewYAMLWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
