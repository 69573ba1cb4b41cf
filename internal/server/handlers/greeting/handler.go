package greeting

import (
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
)

const Message = "Hello, developer."

type Handler struct{}

func NewHandler() handler.Handler {
	return &Handler{}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/", h.get)
}

//	@Summary		Greeting
//	@Description	Liveness check that never touches the filesystem or network
//	@Tags			system
//	@Produce		plain
//	@Success		200	{string}	string	"Hello, developer."
//	@Router			/ [get]
//
// Greeting.
func (h *Handler) get(c *fiber.Ctx) error {
	return c.SendString(Message)
}
