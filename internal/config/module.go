package config

import (
	"github.com/apiarycd/repostats/internal/git"
	"github.com/apiarycd/repostats/internal/scanner"
	"github.com/apiarycd/repostats/internal/server"
	"github.com/apiarycd/repostats/internal/workspace"
	"github.com/apiarycd/repostats/pkg/openapifx"
	"github.com/go-core-fx/fiberfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) server.Config {
			return server.Config{
				AllowOrigins: cfg.HTTP.CORS.AllowOrigins,
			}
		}),
		fx.Provide(func(cfg Config) openapifx.Config {
			return openapifx.Config{
				Enabled:    cfg.HTTP.OpenAPI.Enabled,
				PublicHost: cfg.HTTP.OpenAPI.PublicHost,
				PublicPath: cfg.HTTP.OpenAPI.PublicPath,
			}
		}),
		fx.Provide(func(cfg Config) workspace.Config {
			return workspace.Config{
				BaseDir:    cfg.Workspace.BaseDir,
				StaleAfter: cfg.Workspace.StaleAfter,
			}
		}),
		fx.Provide(func(cfg Config) git.Config {
			return git.Config{
				Driver:                  git.Driver(cfg.Git.Driver),
				Binary:                  cfg.Git.Binary,
				Timeout:                 cfg.Git.Timeout,
				ProbeTimeout:            cfg.Git.ProbeTimeout,
				MaxConcurrentOperations: cfg.Git.MaxConcurrentOperations,
			}
		}),
		fx.Provide(func(cfg Config) scanner.Config {
			return scanner.Config{
				ExcludeDirs: cfg.Scanner.ExcludeDirs,
			}
		}),
	)
}
