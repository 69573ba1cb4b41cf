package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dirPrefix = "repostats-"

type Manager struct {
	baseDir string
	now     func() time.Time

	logger *zap.Logger
}

// NewManager creates a filesystem-backed workspace manager.
func NewManager(config Config, logger *zap.Logger) *Manager {
	baseDir := strings.TrimSpace(config.BaseDir)
	if baseDir == "" {
		baseDir = os.TempDir()
	}

	return &Manager{
		baseDir: filepath.Clean(baseDir),
		now:     time.Now,

		logger: logger,
	}
}

// Acquire creates a new empty workspace directory with a unique name.
func (m *Manager) Acquire(ctx context.Context) (Workspace, error) {
	if err := ctx.Err(); err != nil {
		return Workspace{}, err
	}

	id := uuid.NewString()
	dir, err := filepath.Abs(filepath.Join(m.baseDir, dirPrefix+id))
	if err != nil {
		return Workspace{}, fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	if !utf8.ValidString(dir) {
		return Workspace{}, fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidPath, dir)
	}

	if mkErr := os.MkdirAll(m.baseDir, 0o755); mkErr != nil {
		return Workspace{}, fmt.Errorf("%w: base directory: %w", ErrCreateFailed, mkErr)
	}
	if mkErr := os.Mkdir(dir, 0o700); mkErr != nil {
		return Workspace{}, fmt.Errorf("%w: %w", ErrCreateFailed, mkErr)
	}

	m.logger.Debug("workspace acquired", zap.String("id", id), zap.String("dir", dir))

	return Workspace{ID: id, Dir: dir}, nil
}

// Release removes the workspace directory and everything below it.
// Releasing an already removed workspace is not an error.
func (m *Manager) Release(ws Workspace) error {
	if ws.Dir == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if err := os.RemoveAll(ws.Dir); err != nil {
		return fmt.Errorf("%w: %w", ErrReleaseFailed, err)
	}

	if _, err := os.Stat(ws.Dir); !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s still exists", ErrReleaseFailed, ws.Dir)
	}

	m.logger.Debug("workspace released", zap.String("id", ws.ID), zap.String("dir", ws.Dir))

	return nil
}

// Sweep removes workspaces older than olderThan left behind by a previous process.
func (m *Manager) Sweep(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("olderThan must be positive")
	}

	entries, err := os.ReadDir(m.baseDir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read workspace base directory: %w", err)
	}

	cutoff := m.now().Add(-olderThan)
	deleted := 0

	for _, entry := range entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return deleted, ctxErr
		}
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), dirPrefix) {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			return deleted, fmt.Errorf("read workspace entry info %q: %w", entry.Name(), infoErr)
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if rmErr := os.RemoveAll(filepath.Join(m.baseDir, entry.Name())); rmErr != nil {
			return deleted, fmt.Errorf("remove workspace %q: %w", entry.Name(), rmErr)
		}
		deleted++
	}

	return deleted, nil
}
