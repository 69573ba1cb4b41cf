package server

import (
	"strings"

	"github.com/apiarycd/repostats/internal/server/docs"
	"github.com/apiarycd/repostats/internal/server/handlers/greeting"
	"github.com/apiarycd/repostats/internal/server/handlers/stats"
	"github.com/apiarycd/repostats/pkg/openapifx"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(fiberfx.NewJSONErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),
		fx.Supply(docs.SwaggerInfo),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(greeting.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(stats.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				func(
					config Config,
					handlers []handler.Handler,
					healthHandler handler.Handler,
					openapiHandler *openapifx.Handler,
					app *fiber.App,
				) {
					app.Use(cors.New(cors.Config{
						AllowOrigins: strings.Join(config.AllowOrigins, ","),
						AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost}, ","),
					}))

					// Health endpoint
					healthHandler.Register(app)

					openapiHandler.Register(app.Group("/docs"))

					app.Use(validation.Middleware)

					for _, h := range handlers {
						h.Register(app)
					}
				},
				fx.ParamTags(``, `group:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
