package library

import (
	"bloom/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the library feature. It is disabled when no storage
// client is configured, since catalogs and media live in the bucket.
func NewFeature(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) (*Feature, error) {
	if client == nil {
		return &Feature{enabled: false}, nil
	}
	svc, err := NewService(db, client, bucket, logger)
	if err != nil {
		return nil, err
	}
	return &Feature{
		service: svc,
		handler: NewHandler(svc, logger),
		enabled: true,
	}, nil
}

// Service exposes the library service to other features and commands.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "library"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
