package journal

import (
	"bloom/core/cycle"
	"bloom/core/logger"
	"bloom/feature/journal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the journal.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the journal routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/journal")
	group.Get("/", h.HandleListEntries)
	group.Get("/config", h.HandleGetConfig)
	group.Put("/config", h.HandlePutConfig)
	group.Get("/:date", h.HandleGetEntry)
	group.Put("/:date", h.HandlePutEntry)
	group.Get("/:date/phase", h.HandleGetPhase)
}

// HandleListEntries returns the entries in a date range.
// @Summary List journal entries
// @Description List journal entries, optionally bounded by from/to dates (YYYY-MM-DD).
// @Tags journal
// @Produce json
// @Param from query string false "Start date (inclusive)"
// @Param to query string false "End date (inclusive)"
// @Success 200 {array} models.EntryResponse
// @Failure 500 {object} map[string]string
// @Router /journal [get]
func (h *Handler) HandleListEntries(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	log, err := h.service.Range(c.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		l.Error("Journal list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	entries := make([]models.EntryResponse, 0, len(log))
	for date, e := range log {
		entries = append(entries, toResponse(date, e))
	}
	return c.JSON(entries)
}

// HandleGetEntry returns the entry for one date.
// @Summary Get journal entry
// @Tags journal
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} models.EntryResponse
// @Failure 404 {object} map[string]string
// @Router /journal/{date} [get]
func (h *Handler) HandleGetEntry(c *fiber.Ctx) error {
	date := c.Params("date")

	entry, found, err := h.service.Get(c.Context(), date)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Journal read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no entry for " + date})
	}
	return c.JSON(toResponse(date, entry))
}

// HandlePutEntry creates or overwrites the entry for one date. Submitting an
// empty entry deletes it.
// @Summary Put journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param entry body models.EntryRequest true "Entry data"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /journal/{date} [put]
func (h *Handler) HandlePutEntry(c *fiber.Ctx) error {
	date := c.Params("date")

	var req models.EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	entry := cycle.Entry{
		Marker:   cycle.Marker(req.Marker),
		Symptoms: req.Symptoms,
		Mood:     req.Mood,
		Notes:    req.Notes,
	}

	if err := h.service.Upsert(c.Context(), date, entry); err != nil {
		logger.WithRayID(h.logger, c).Warn("Journal upsert rejected", zap.String("date", date), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetPhase returns the derived phase info for one date.
// @Summary Get phase for date
// @Tags journal
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} cycle.PhaseInfo
// @Failure 400 {object} map[string]string
// @Router /journal/{date}/phase [get]
func (h *Handler) HandleGetPhase(c *fiber.Ctx) error {
	info, err := h.service.PhaseFor(c.Context(), c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(info)
}

// HandleGetConfig returns the cycle configuration.
// @Summary Get cycle configuration
// @Tags journal
// @Produce json
// @Success 200 {object} cycle.Config
// @Router /journal/config [get]
func (h *Handler) HandleGetConfig(c *fiber.Ctx) error {
	return c.JSON(h.service.CycleConfig(c.Context()))
}

// HandlePutConfig updates the cycle configuration.
// @Summary Put cycle configuration
// @Tags journal
// @Accept json
// @Produce json
// @Param config body cycle.Config true "Cycle configuration"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /journal/config [put]
func (h *Handler) HandlePutConfig(c *fiber.Ctx) error {
	var cfg cycle.Config
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.service.SetCycleConfig(c.Context(), cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toResponse(date string, e cycle.Entry) models.EntryResponse {
	return models.EntryResponse{
		Date:     date,
		Marker:   string(e.Marker),
		Symptoms: e.Symptoms,
		Mood:     e.Mood,
		Notes:    e.Notes,
	}
}
