package referral

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	repo    *Repository
	service *Service
	handler *Handler
}

// NewFeature creates a new Referral feature.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	repo := NewRepository(db)
	svc := NewService(repo, logger)
	h := NewHandler(svc)
	return &Feature{repo: repo, service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "referral"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the referral tables and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.repo.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate referral tables: %w", err)
	}
	f.handler.RegisterRoutes(app)
	return nil
}
