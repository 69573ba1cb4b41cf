package internal

import (
	"context"
	"fmt"

	"github.com/apiarycd/repostats/internal/config"
	"github.com/apiarycd/repostats/internal/git"
	"github.com/apiarycd/repostats/internal/report"
	"github.com/apiarycd/repostats/internal/scanner"
	"github.com/apiarycd/repostats/internal/server"
	"github.com/apiarycd/repostats/internal/stats"
	"github.com/apiarycd/repostats/internal/workspace"
	"github.com/apiarycd/repostats/pkg/openapifx"
	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Version is set at build time.
var Version = "0.1.0"

func businessModules() fx.Option {
	return fx.Options(
		workspace.Module(),
		git.Module(),
		scanner.Module(),
		stats.Module(),
	)
}

// Run starts the HTTP service and blocks until it is stopped.
func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		healthfx.Module(),
		fiberfx.Module(),
		validator.Module,
		openapifx.Module(),
		//
		// APP MODULES
		config.Module(),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() health.Version { return health.Version{Version: Version, ReleaseID: 1} }),
		businessModules(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("🚀 repostats service starting up", zap.String("version", Version))
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 repostats service shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}

// Analyze runs a single analysis in-process and renders the result with w.
func Analyze(ctx context.Context, url string, w report.Writer) error {
	var svc *stats.Service

	app := fx.New(
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(),
		businessModules(),
		fx.Populate(&svc),
	)

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer func() {
		_ = app.Stop(context.WithoutCancel(ctx))
	}()

	response, err := svc.Analyze(ctx, url)
	if err != nil {
		return err //nolint:wrapcheck //message is shown to the user as is
	}

	return w.Write(response) //nolint:wrapcheck //already wrapped
}
