package referral

import (
	"context"
	"fmt"

	"staff-admin/feature/referral/models"

	"gorm.io/gorm"
)

// Repository persists advocates, leads, payouts and sales reps.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a referral repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the referral tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&models.Advocate{},
		&models.Lead{},
		&models.Payout{},
		&models.SalesRep{},
	)
}

// ListAdvocates returns advocates, optionally filtered by rep.
func (r *Repository) ListAdvocates(ctx context.Context, repID string) ([]models.Advocate, error) {
	q := r.db.WithContext(ctx).Order("created_at")
	if repID != "" {
		q = q.Where("rep_id = ?", repID)
	}

	var advocates []models.Advocate
	if err := q.Find(&advocates).Error; err != nil {
		return nil, fmt.Errorf("failed to list advocates: %w", err)
	}
	return advocates, nil
}

// GetAdvocate returns one advocate by id.
func (r *Repository) GetAdvocate(ctx context.Context, advocateID string) (*models.Advocate, error) {
	var advocate models.Advocate
	if err := r.db.WithContext(ctx).First(&advocate, "advocate_id = ?", advocateID).Error; err != nil {
		return nil, err
	}
	return &advocate, nil
}

// CreateAdvocate inserts a new advocate.
func (r *Repository) CreateAdvocate(ctx context.Context, advocate *models.Advocate) error {
	if err := r.db.WithContext(ctx).Create(advocate).Error; err != nil {
		return fmt.Errorf("failed to create advocate: %w", err)
	}
	return nil
}

// SaveAdvocate writes back a full advocate record.
func (r *Repository) SaveAdvocate(ctx context.Context, advocate *models.Advocate) error {
	if err := r.db.WithContext(ctx).Save(advocate).Error; err != nil {
		return fmt.Errorf("failed to save advocate: %w", err)
	}
	return nil
}

// LeadFilter narrows a lead listing. Zero values mean no filter.
type LeadFilter struct {
	AdvocateID string
	RepID      string
	Status     string
}

// ListLeads returns leads matching the filter.
func (r *Repository) ListLeads(ctx context.Context, filter LeadFilter) ([]models.Lead, error) {
	q := r.db.WithContext(ctx).Order("created_at")
	if filter.AdvocateID != "" {
		q = q.Where("advocate_id = ?", filter.AdvocateID)
	}
	if filter.RepID != "" {
		q = q.Where("rep_id = ?", filter.RepID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var leads []models.Lead
	if err := q.Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// GetLead returns one lead by id.
func (r *Repository) GetLead(ctx context.Context, leadID string) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.WithContext(ctx).First(&lead, "lead_id = ?", leadID).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// CreateLead inserts a new lead.
func (r *Repository) CreateLead(ctx context.Context, lead *models.Lead) error {
	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// SaveLead writes back a full lead record.
func (r *Repository) SaveLead(ctx context.Context, lead *models.Lead) error {
	if err := r.db.WithContext(ctx).Save(lead).Error; err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}
	return nil
}

// PayoutFilter narrows a payout listing. Zero values mean no filter.
type PayoutFilter struct {
	AdvocateID string
	Status     string
}

// ListPayouts returns payouts matching the filter.
func (r *Repository) ListPayouts(ctx context.Context, filter PayoutFilter) ([]models.Payout, error) {
	q := r.db.WithContext(ctx).Order("created_at")
	if filter.AdvocateID != "" {
		q = q.Where("advocate_id = ?", filter.AdvocateID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var payouts []models.Payout
	if err := q.Find(&payouts).Error; err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

// GetPayout returns one payout by id.
func (r *Repository) GetPayout(ctx context.Context, payoutID string) (*models.Payout, error) {
	var payout models.Payout
	if err := r.db.WithContext(ctx).First(&payout, "payout_id = ?", payoutID).Error; err != nil {
		return nil, err
	}
	return &payout, nil
}

// CreatePayout inserts a new payout.
func (r *Repository) CreatePayout(ctx context.Context, payout *models.Payout) error {
	if err := r.db.WithContext(ctx).Create(payout).Error; err != nil {
		return fmt.Errorf("failed to create payout: %w", err)
	}
	return nil
}

// SavePayout writes back a full payout record.
func (r *Repository) SavePayout(ctx context.Context, payout *models.Payout) error {
	if err := r.db.WithContext(ctx).Save(payout).Error; err != nil {
		return fmt.Errorf("failed to save payout: %w", err)
	}
	return nil
}

// ListSalesReps returns every sales rep.
func (r *Repository) ListSalesReps(ctx context.Context) ([]models.SalesRep, error) {
	var reps []models.SalesRep
	if err := r.db.WithContext(ctx).Order("rep_id").Find(&reps).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales reps: %w", err)
	}
	return reps, nil
}
