package scanner

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/hhatto/gocloc"
	"go.uber.org/zap"
)

type Scanner struct {
	languages   *gocloc.DefinedLanguages
	excludeDirs *regexp.Regexp

	logger *zap.Logger
}

func New(config Config, logger *zap.Logger) (*Scanner, error) {
	var excludeDirs *regexp.Regexp
	if config.ExcludeDirs != "" {
		re, err := regexp.Compile(config.ExcludeDirs)
		if err != nil {
			return nil, fmt.Errorf("%w: exclude_dirs: %w", ErrInvalidConfig, err)
		}
		excludeDirs = re
	}

	return &Scanner{
		languages:   gocloc.NewDefinedLanguages(),
		excludeDirs: excludeDirs,

		logger: logger,
	}, nil
}

// Scan counts lines per language below dir. Languages are returned ordered by name.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]Language, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanFailed, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrScanFailed, dir)
	}

	options := gocloc.NewClocOptions()
	if s.excludeDirs != nil {
		options.ReNotMatchDir = s.excludeDirs
	}

	result, err := gocloc.NewProcessor(s.languages, options).Analyze([]string{dir})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanFailed, err)
	}

	languages := make([]Language, 0, len(result.Languages))
	for _, lang := range result.Languages {
		if len(lang.Files) == 0 {
			continue
		}

		languages = append(languages, Language{
			Name:     lang.Name,
			Files:    len(lang.Files),
			Code:     int(lang.Code),
			Comments: int(lang.Comments),
			Blanks:   int(lang.Blanks),
		})
	}

	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Name < languages[j].Name
	})

	s.logger.Debug("directory scanned",
		zap.String("dir", dir),
		zap.Int("languages", len(languages)))

	return languages, nil
}
