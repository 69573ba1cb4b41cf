package openapifx

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

type Handler struct {
	config Config

	logger *zap.Logger
}

func New(config Config, spec *swag.Spec, logger *zap.Logger) *Handler {
	if config.PublicHost != "" {
		spec.Host = config.PublicHost
	}
	if config.PublicPath != "" {
		spec.BasePath = config.PublicPath
	}

	return &Handler{
		config: config,

		logger: logger,
	}
}

// Register serves Swagger UI below r when enabled.
func (h *Handler) Register(r fiber.Router) {
	if !h.config.Enabled {
		h.logger.Debug("openapi documentation disabled")
		return
	}

	r.Get("/*", swagger.HandlerDefault)
}
