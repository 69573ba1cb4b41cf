package stats

import (
	"github.com/apiarycd/repostats/internal/git"
	"github.com/apiarycd/repostats/internal/scanner"
	"github.com/apiarycd/repostats/internal/workspace"
	"github.com/go-core-fx/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"stats",
		logger.WithNamedLogger("stats"),
		fx.Provide(
			func() *Metrics { return NewMetrics(prometheus.DefaultRegisterer) },
			fx.Private,
		),
		fx.Provide(
			func(m *workspace.Manager) WorkspaceManager { return m },
			func(s *git.Service) Fetcher { return s },
			func(s *scanner.Scanner) Scanner { return s },
			fx.Private,
		),
		fx.Provide(NewService),
	)
}
