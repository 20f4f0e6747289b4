package library

import (
	"bloom/core/logger"
	"bloom/feature/library/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the library.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the library routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/library")
	group.Get("/workouts", h.HandleListWorkouts)
	group.Get("/recipes", h.HandleListRecipes)
	group.Get("/check", h.HandleCheck)
	group.Put("/favorites/:kind/:id", h.HandleFavorite)
	group.Delete("/favorites/:kind/:id", h.HandleUnfavorite)
}

// HandleListWorkouts returns the workout catalog page.
// @Summary List workouts
// @Description Workout catalog entries with rendered list markup.
// @Tags library
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} models.ListView
// @Failure 500 {object} map[string]string
// @Router /library/workouts [get]
func (h *Handler) HandleListWorkouts(c *fiber.Ctx) error {
	return h.list(c, models.KindWorkout)
}

// HandleListRecipes returns the recipe catalog page.
// @Summary List recipes
// @Description Recipe catalog entries with rendered list markup.
// @Tags library
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} models.ListView
// @Failure 500 {object} map[string]string
// @Router /library/recipes [get]
func (h *Handler) HandleListRecipes(c *fiber.Ctx) error {
	return h.list(c, models.KindRecipe)
}

func (h *Handler) list(c *fiber.Ctx, kind models.Kind) error {
	l := logger.WithRayID(h.logger, c)

	view, err := h.service.List(c.Context(), kind, c.Query("category"))
	if err != nil {
		l.Error("List failed", zap.String("kind", string(kind)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(view)
}

// HandleCheck reconciles catalogs, media and favorites.
// @Summary Check library integrity
// @Description Per-key presence across catalog documents, media objects and favorites.
// @Tags library
// @Produce json
// @Success 200 {object} models.CheckReport
// @Failure 500 {object} map[string]string
// @Router /library/check [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	report, err := h.service.Check(c.Context())
	if err != nil {
		l.Error("Check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	l.Info("Library check completed",
		zap.Int("total", report.Summary.TotalItems),
		zap.Int("missing_media", report.Summary.MissingMedia),
		zap.Int("orphan_media", report.Summary.OrphanMedia),
		zap.Int("dangling_favorites", report.Summary.DanglingFavorites))
	return c.JSON(report)
}

// HandleFavorite marks an item as favorite.
// @Summary Favorite an item
// @Description Marks a catalog item as favorite. Idempotent.
// @Tags library
// @Produce json
// @Param kind path string true "Catalog kind (workout or recipe)"
// @Param id path string true "Catalog item id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /library/favorites/{kind}/{id} [put]
func (h *Handler) HandleFavorite(c *fiber.Ctx) error {
	kind := models.Kind(c.Params("kind"))
	id := c.Params("id")
	if !kind.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown catalog kind"})
	}

	if err := h.service.Favorite(c.Context(), kind, id); err != nil {
		l := logger.WithRayID(h.logger, c)
		l.Error("Favorite failed", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "favorited"})
}

// HandleUnfavorite removes a favorite mark.
// @Summary Unfavorite an item
// @Description Removes a favorite mark. Idempotent.
// @Tags library
// @Produce json
// @Param kind path string true "Catalog kind (workout or recipe)"
// @Param id path string true "Catalog item id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /library/favorites/{kind}/{id} [delete]
func (h *Handler) HandleUnfavorite(c *fiber.Ctx) error {
	kind := models.Kind(c.Params("kind"))
	id := c.Params("id")
	if !kind.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown catalog kind"})
	}

	if err := h.service.Unfavorite(c.Context(), kind, id); err != nil {
		l := logger.WithRayID(h.logger, c)
		l.Error("Unfavorite failed", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "unfavorited"})
}
