package stats

import (
	"errors"
	"fmt"

	"github.com/apiarycd/repostats/internal/stats"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	statsSvc *stats.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(statsSvc *stats.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		statsSvc: statsSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/stats")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
}

//	@Summary		Analyse a repository
//	@Description	Shallow clone a git repository and count code, comment and blank lines per language
//	@Tags			stats
//	@Accept			json
//	@Produce		json
//	@Produce		plain
//	@Param			request	body		Request	true	"Repository to analyse"
//	@Success		200		{object}	Response
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		500		{string}	string	"Pipeline failure message"
//	@Router			/stats [post]
//
// Analyse a repository.
func (h *Handler) post(c *fiber.Ctx, req *Request) error {
	response, err := h.statsSvc.Analyze(c.Context(), req.URL)
	if err != nil {
		return fmt.Errorf("failed to analyse repository: %w", err)
	}

	return c.JSON(response)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	var pipelineErr *stats.PipelineError
	if errors.As(err, &pipelineErr) {
		h.logger.Warn("analysis request failed",
			zap.String("kind", pipelineErr.Kind().Error()),
			zap.String("detail", pipelineErr.Detail()))

		return c.Status(fiber.StatusInternalServerError).SendString(pipelineErr.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
