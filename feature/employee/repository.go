package employee

import (
	"context"
	"fmt"

	"staff-admin/feature/employee/models"

	"gorm.io/gorm"
)

// Repository persists the roster. The stored collection is replaced
// wholesale on every save: no partial updates, no version check, last
// writer wins. That mirrors the roster's source of truth being a
// spreadsheet export rather than row-level edits.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a roster repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the employees table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&models.Employee{})
}

// LoadAll returns the full stored roster in insertion order.
func (r *Repository) LoadAll(ctx context.Context) ([]models.Employee, error) {
	var records []models.Employee
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	return records, nil
}

// ReplaceAll replaces the entire stored collection in one transaction.
func (r *Repository) ReplaceAll(ctx context.Context, records []models.Employee) error {
	// Fresh rows get fresh keys; the surrogate id carries no meaning.
	rows := make([]models.Employee, len(records))
	copy(rows, records)
	for i := range rows {
		rows[i].ID = 0
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Employee{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(&rows, 200).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace employees: %w", err)
	}
	return nil
}
