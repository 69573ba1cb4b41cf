package stats

import (
	"context"

	"github.com/apiarycd/repostats/internal/scanner"
	"github.com/apiarycd/repostats/internal/workspace"
)

// WorkspaceManager hands out per-run scratch directories.
type WorkspaceManager interface {
	// Acquire creates a new empty workspace.
	Acquire(ctx context.Context) (workspace.Workspace, error)

	// Release removes the workspace. It must be safe to call on an already removed workspace.
	Release(ws workspace.Workspace) error
}

// Fetcher materialises a remote repository in a local directory.
type Fetcher interface {
	// Fetch checks url is reachable and shallow clones it into directory.
	Fetch(ctx context.Context, url, directory string) error
}

// Scanner counts lines per language below a directory.
type Scanner interface {
	Scan(ctx context.Context, dir string) ([]scanner.Language, error)
}
