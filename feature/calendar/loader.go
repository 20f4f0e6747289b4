package calendar

import (
	"bloom/feature/journal"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the calendar feature. Journal writes invalidate every
// rendered month: a period marker moves the phase anchor and the prediction
// windows for months far from the written date, and a configuration change
// shifts all of them, so no mounted container can be trusted afterwards.
func NewFeature(j *journal.Service, logger *zap.Logger) *Feature {
	svc := NewService(j, logger)
	j.OnChange(func(string) {
		svc.InvalidateAll()
	})
	return &Feature{service: svc, handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "calendar"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
