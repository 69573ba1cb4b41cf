package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/transport"
	"go.uber.org/zap"
)

// Cloner performs a shallow clone into an existing empty directory.
type Cloner interface {
	Clone(ctx context.Context, req CloneRequest) error
}

// NewCloner returns the Cloner selected by config.Driver.
func NewCloner(config Config, logger *zap.Logger) (Cloner, error) {
	switch config.Driver {
	case DriverGoGit, "":
		return NewGoGitCloner(logger), nil
	case DriverCLI:
		return NewCLICloner(config.Binary, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, config.Driver)
	}
}

type goGitCloner struct {
	logger *zap.Logger
}

func NewGoGitCloner(logger *zap.Logger) Cloner {
	return &goGitCloner{logger: logger}
}

// Clone implements Cloner.
func (c *goGitCloner) Clone(ctx context.Context, req CloneRequest) error {
	cloneOptions := &git.CloneOptions{
		URL:          req.URL,
		SingleBranch: true,
		Depth:        1,
	}

	_, err := git.PlainCloneContext(ctx, req.Directory, cloneOptions)
	if errors.Is(err, transport.ErrEmptyRemoteRepository) {
		// The destination already holds an initialised repository with origin set.
		c.logger.Info("remote repository is empty", zap.String("url", req.URL))
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}

	return nil
}

type cliCloner struct {
	binary string
	logger *zap.Logger
}

func NewCLICloner(binary string, logger *zap.Logger) Cloner {
	if binary == "" {
		binary = "git"
	}

	return &cliCloner{
		binary: binary,
		logger: logger,
	}
}

// Clone implements Cloner.
func (c *cliCloner) Clone(ctx context.Context, req CloneRequest) error {
	cmd := exec.CommandContext(ctx, c.binary, "clone", "--depth", "1", "-q", "--", req.URL, req.Directory)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		c.logger.Debug("git clone failed",
			zap.String("binary", c.binary),
			zap.String("stderr", strings.TrimSpace(stderr.String())),
			zap.Error(err))
		return fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}

	return nil
}
