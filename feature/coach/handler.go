package coach

import (
	"bloom/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the coach.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the coach routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/coach")
	group.Post("/chat", h.HandleChat)
}

// HandleChat answers one chat turn.
// @Summary Chat with the coach
// @Description Phase-aware wellness chat. Returns a fallback reply when no API key is configured.
// @Tags coach
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Chat turn"
// @Success 200 {object} ChatReply
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /coach/chat [post]
func (h *Handler) HandleChat(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}

	reply, err := h.service.Chat(c.Context(), req)
	if err != nil {
		l.Error("Chat failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(reply)
}
