package stats

import (
	"context"
	"errors"

	"github.com/apiarycd/repostats/internal/git"
	"github.com/apiarycd/repostats/internal/workspace"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	workspaces WorkspaceManager
	fetcher    Fetcher
	scanner    Scanner

	metrics *Metrics
	logger  *zap.Logger
}

func NewService(
	workspaces WorkspaceManager,
	fetcher Fetcher,
	scanner Scanner,
	metrics *Metrics,
	logger *zap.Logger,
) *Service {
	return &Service{
		workspaces: workspaces,
		fetcher:    fetcher,
		scanner:    scanner,

		metrics: metrics,
		logger:  logger,
	}
}

// Analyze clones origin into a fresh workspace, counts lines per language and
// removes the workspace before returning. Every returned error is a *PipelineError.
func (s *Service) Analyze(ctx context.Context, origin string) (response *Response, err error) {
	logger := s.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("origin", origin),
	)
	logger.Info("analysis started")

	if s.metrics != nil {
		done := s.metrics.start()
		defer func() { done(err) }()
	}

	ws, err := s.workspaces.Acquire(ctx)
	if err != nil {
		return nil, s.fail(logger, newPipelineError(ErrWorkspace, MessageWorkspaceFailed, err))
	}
	defer func() {
		relErr := s.workspaces.Release(ws)
		if relErr == nil {
			logger.Debug("workspace released", zap.String("dir", ws.Dir))
			return
		}

		if err != nil {
			logger.Warn("failed to release workspace after failed run",
				zap.String("dir", ws.Dir),
				zap.Error(relErr))
			return
		}

		response = nil
		err = s.fail(logger, newPipelineError(ErrIO, MessageCleanupFailed, relErr))
	}()

	logger.Debug("workspace acquired", zap.String("dir", ws.Dir))

	if fetchErr := s.fetcher.Fetch(ctx, origin, ws.Dir); fetchErr != nil {
		return nil, s.fail(logger, classifyFetchError(fetchErr))
	}

	languages, err := s.scanner.Scan(ctx, ws.Dir)
	if err != nil {
		return nil, s.fail(logger, newPipelineError(ErrIO, MessageScanFailed, err))
	}

	entries, total := Aggregate(languages)

	logger.Info("analysis completed",
		zap.Int("languages", len(entries)),
		zap.Int("files", total.Files),
		zap.Int("lines", total.Lines))

	return &Response{
		Origin: origin,
		Stats:  entries,
		Total:  total,
	}, nil
}

func (s *Service) fail(logger *zap.Logger, pErr *PipelineError) error {
	logger.Warn("analysis failed",
		zap.String("kind", pErr.Kind().Error()),
		zap.String("message", pErr.Error()),
		zap.NamedError("cause", pErr.Unwrap()))

	return pErr
}

func classifyFetchError(err error) *PipelineError {
	switch {
	case errors.Is(err, git.ErrURLInvalid):
		return newPipelineError(ErrFetch, MessageURLInvalid, err)
	case errors.Is(err, git.ErrRequestFailed):
		return newPipelineError(ErrFetch, MessageRequestFailed, err)
	case errors.Is(err, git.ErrRepositoryNotFound):
		return newPipelineError(ErrClone, MessageRepositoryNotFound, err)
	case errors.Is(err, workspace.ErrInvalidPath):
		return newPipelineError(ErrWorkspace, MessageWorkspaceFailed, err)
	default:
		return newPipelineError(ErrClone, MessageCloneFailed, err)
	}
}
