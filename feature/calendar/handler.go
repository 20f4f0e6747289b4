package calendar

import (
	"errors"

	"bloom/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the calendar.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the calendar routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/calendar")
	group.Get("/:month", h.HandleGetMonth)
}

// HandleGetMonth returns the assembled month view.
// @Summary Get month view
// @Description Grid cells, today's phase and rendered markup for one month.
// @Tags calendar
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} MonthView
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /calendar/{month} [get]
func (h *Handler) HandleGetMonth(c *fiber.Ctx) error {
	month := c.Params("month")
	l := logger.WithRayID(h.logger, c)

	view, err := h.service.Month(c.Context(), month)
	if errors.Is(err, ErrBadMonth) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Month view failed", zap.String("month", month), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(view)
}
