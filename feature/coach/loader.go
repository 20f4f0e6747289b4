package coach

import (
	"context"

	"bloom/feature/journal"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the coach feature. Without an API key the feature still
// loads and serves the not-configured fallback.
func NewFeature(ctx context.Context, cfg Config, j *journal.Service, logger *zap.Logger) (*Feature, error) {
	var generator Generator
	if cfg.IsConfigured() {
		g, err := NewGenerator(ctx, cfg.ApiKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		generator = g
	} else {
		logger.Warn("Coach running without an API key, chat replies with a fallback")
	}

	svc := NewService(j, generator, logger)
	return &Feature{service: svc, handler: NewHandler(svc, logger)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "coach"
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
