package workspace

import (
	"context"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"workspace",
		logger.WithNamedLogger("workspace"),
		fx.Provide(NewManager),
		fx.Invoke(func(lc fx.Lifecycle, config Config, manager *Manager, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					if config.StaleAfter <= 0 {
						return nil
					}

					deleted, err := manager.Sweep(ctx, config.StaleAfter)
					if err != nil {
						logger.Warn("failed to sweep stale workspaces", zap.Error(err))
						return nil
					}

					logger.Info("stale workspaces swept", zap.Int("deleted", deleted))
					return nil
				},
			})
		}),
	)
}
