package employee

import (
	"context"
	"fmt"

	"staff-admin/core/config"
	"staff-admin/core/storage"

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

// NewFeature creates a new Employee feature. The storage client may be nil,
// in which case import archiving is disabled.
func NewFeature(db *gorm.DB, client storage.Client, logger *zap.Logger, cfg *config.Config) *Feature {
	repo := NewRepository(db)
	store := NewStore()
	svc := NewService(repo, store, client, cfg.Storage.Bucket,
		cfg.Importer.Archive, cfg.Importer.ArchivePrefix,
		cfg.Importer.SheetURL, logger)
	h := NewHandler(svc)
	return &Feature{repo: repo, service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "employee"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the roster table, warms the in-memory roster from the
// database and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.repo.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate employee table: %w", err)
	}
	if err := f.service.Load(context.Background()); err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	f.handler.RegisterRoutes(app)
	return nil
}
