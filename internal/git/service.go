package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v6"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// probeDrainLimit caps how much of a probe response body is read before closing it.
const probeDrainLimit = 64 << 10

type Service struct {
	config Config

	client *http.Client
	cloner Cloner
	slots  *semaphore.Weighted

	logger *zap.Logger
}

// NewService creates a new repository fetcher.
func NewService(config Config, cloner Cloner, logger *zap.Logger) *Service {
	var slots *semaphore.Weighted
	if config.MaxConcurrentOperations > 0 {
		slots = semaphore.NewWeighted(int64(config.MaxConcurrentOperations))
	}

	return &Service{
		config: config,

		client: &http.Client{Timeout: config.ProbeTimeout},
		cloner: cloner,
		slots:  slots,

		logger: logger,
	}
}

// Fetch checks that url is reachable and shallow clones it into directory.
func (s *Service) Fetch(ctx context.Context, url, directory string) error {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	logger := s.logger.With(zap.String("url", url), zap.String("directory", directory))

	if err := s.probe(ctx, url); err != nil {
		logger.Warn("repository url probe failed", zap.Error(err))
		return err
	}

	if err := s.clone(ctx, CloneRequest{URL: url, Directory: directory}); err != nil {
		logger.Warn("failed to clone repository", zap.Error(err))
		return err
	}

	if err := s.verify(directory); err != nil {
		logger.Warn("clone produced no repository", zap.Error(err))
		return err
	}

	hash, err := s.headCommit(directory)
	if err != nil {
		logger.Debug("failed to resolve HEAD", zap.Error(err))
	}

	logger.Info("repository cloned successfully", zap.String("head", hash))

	return nil
}

// headCommit returns the commit hash HEAD points to. Empty repositories have none.
func (s *Service) headCommit(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRepositoryNotFound, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

func (s *Service) probe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrURLInvalid, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrURLInvalid, err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, probeDrainLimit))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	return nil
}

func (s *Service) clone(ctx context.Context, req CloneRequest) error {
	if s.slots != nil {
		if err := s.slots.Acquire(ctx, 1); err != nil {
			return fmt.Errorf("%w: waiting for a clone slot: %w", ErrCloneFailed, err)
		}
		defer s.slots.Release(1)
	}

	s.logger.Info("cloning repository",
		zap.String("url", req.URL),
		zap.String("directory", req.Directory))

	err := s.cloner.Clone(ctx, req)
	if err != nil && !errors.Is(err, ErrCloneFailed) {
		return fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}

	return err
}

func (s *Service) verify(directory string) error {
	info, err := os.Stat(filepath.Join(directory, metadataDir))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRepositoryNotFound, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrRepositoryNotFound, metadataDir)
	}

	return nil
}
