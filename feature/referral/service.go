package referral

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"staff-admin/feature/referral/models"

	"go.uber.org/zap"
)

// referralCodeChars deliberately omits ambiguous characters (0/O, 1/l/I)
// so codes survive being read over the phone.
const referralCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const referralCodeLength = 6

// referralBaseURL is the public signup link prefix printed on advocate
// materials.
const referralBaseURL = "https://refer.staffadmin.internal"

// Service implements the referral program rules: advocates earn tiered
// payouts as their leads move through the pipeline, and the denormalized
// earnings counters on the advocate record track the payout ledger.
type Service struct {
	repo   *Repository
	logger *zap.Logger
	now    func() time.Time

	mu     sync.Mutex
	lastMS int64
}

// NewService creates a new referral service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// nextID returns "<prefix><unix-ms>", strictly increasing even when two
// records are created within the same millisecond.
func (s *Service) nextID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms := s.now().UnixMilli()
	if ms <= s.lastMS {
		ms = s.lastMS + 1
	}
	s.lastMS = ms
	return fmt.Sprintf("%s%d", prefix, ms)
}

// generateReferralCode returns a random 6-character code.
func generateReferralCode() string {
	var b strings.Builder
	for i := 0; i < referralCodeLength; i++ {
		b.WriteByte(referralCodeChars[rand.IntN(len(referralCodeChars))])
	}
	return b.String()
}

// AdvocateInput is the caller-supplied part of a new advocate.
type AdvocateInput struct {
	RepID     string `json:"repId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Source    string `json:"source"`
}

// CreateAdvocate registers a new advocate and records their pending
// signup payout.
func (s *Service) CreateAdvocate(ctx context.Context, input AdvocateInput) (*models.Advocate, error) {
	nowMS := s.now().UnixMilli()
	code := generateReferralCode()
	source := input.Source
	if source == "" {
		source = "MANUAL"
	}

	advocate := &models.Advocate{
		AdvocateID:   s.nextID("ADV"),
		RepID:        input.RepID,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Address:      input.Address,
		ReferralCode: code,
		ReferralURL:  fmt.Sprintf("%s/refer/%s", referralBaseURL, code),
		CreatedAt:    nowMS,
		UpdatedAt:    nowMS,
		Active:       true,
		Source:       source,
	}

	if err := s.repo.CreateAdvocate(ctx, advocate); err != nil {
		return nil, err
	}

	if _, err := s.createPayout(ctx, advocate.AdvocateID, "", models.PayoutTypeSignup); err != nil {
		return nil, err
	}

	s.logger.Info("Advocate created",
		zap.String("advocateId", advocate.AdvocateID),
		zap.String("repId", advocate.RepID),
	)
	return advocate, nil
}

// AdvocateUpdate carries the mutable advocate fields; blank fields are
// left untouched.
type AdvocateUpdate struct {
	RepID     string `json:"repId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Active    *bool  `json:"active"`
}

// UpdateAdvocate applies the given field updates.
func (s *Service) UpdateAdvocate(ctx context.Context, advocateID string, update AdvocateUpdate) (*models.Advocate, error) {
	advocate, err := s.repo.GetAdvocate(ctx, advocateID)
	if err != nil {
		return nil, err
	}

	if update.RepID != "" {
		advocate.RepID = update.RepID
	}
	if update.Email != "" {
		advocate.Email = update.Email
	}
	if update.FirstName != "" {
		advocate.FirstName = update.FirstName
	}
	if update.LastName != "" {
		advocate.LastName = update.LastName
	}
	if update.Phone != "" {
		advocate.Phone = update.Phone
	}
	if update.Address != "" {
		advocate.Address = update.Address
	}
	if update.Active != nil {
		advocate.Active = *update.Active
	}
	advocate.UpdatedAt = s.now().UnixMilli()

	if err := s.repo.SaveAdvocate(ctx, advocate); err != nil {
		return nil, err
	}
	return advocate, nil
}

// ListAdvocates returns advocates, optionally for one rep.
func (s *Service) ListAdvocates(ctx context.Context, repID string) ([]models.Advocate, error) {
	return s.repo.ListAdvocates(ctx, repID)
}

// AdvocateDetail bundles an advocate with their leads and payouts.
type AdvocateDetail struct {
	Advocate *models.Advocate `json:"advocate"`
	Leads    []models.Lead    `json:"leads"`
	Payouts  []models.Payout  `json:"payouts"`
}

// GetAdvocate returns one advocate with their leads and payouts.
func (s *Service) GetAdvocate(ctx context.Context, advocateID string) (*AdvocateDetail, error) {
	advocate, err := s.repo.GetAdvocate(ctx, advocateID)
	if err != nil {
		return nil, err
	}

	leads, err := s.repo.ListLeads(ctx, LeadFilter{AdvocateID: advocateID})
	if err != nil {
		return nil, err
	}
	payouts, err := s.repo.ListPayouts(ctx, PayoutFilter{AdvocateID: advocateID})
	if err != nil {
		return nil, err
	}

	return &AdvocateDetail{Advocate: advocate, Leads: leads, Payouts: payouts}, nil
}

// LeadInput is the caller-supplied part of a new lead.
type LeadInput struct {
	AdvocateID string `json:"advocateId"`
	RepID      string `json:"repId"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Product    string `json:"product"`
	Source     string `json:"source"`
}

// CreateLead records a new referred lead and bumps the advocate's lead count.
func (s *Service) CreateLead(ctx context.Context, input LeadInput) (*models.Lead, error) {
	if input.AdvocateID == "" {
		return nil, fmt.Errorf("advocateId is required")
	}
	advocate, err := s.repo.GetAdvocate(ctx, input.AdvocateID)
	if err != nil {
		return nil, err
	}

	nowMS := s.now().UnixMilli()
	product := input.Product
	if product == "" {
		product = "Referral"
	}
	source := input.Source
	if source == "" {
		source = "MANUAL"
	}

	lead := &models.Lead{
		LeadID:     s.nextID("LEAD"),
		AdvocateID: input.AdvocateID,
		RepID:      input.RepID,
		Status:     models.LeadStatusNew,
		Email:      input.Email,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Phone:      input.Phone,
		Address:    input.Address,
		Product:    product,
		Source:     source,
		CreatedAt:  nowMS,
		UpdatedAt:  nowMS,
	}

	if err := s.repo.CreateLead(ctx, lead); err != nil {
		return nil, err
	}

	advocate.TotalLeads++
	advocate.UpdatedAt = nowMS
	if err := s.repo.SaveAdvocate(ctx, advocate); err != nil {
		return nil, err
	}

	return lead, nil
}

// ListLeads returns leads matching the filter.
func (s *Service) ListLeads(ctx context.Context, filter LeadFilter) ([]models.Lead, error) {
	return s.repo.ListLeads(ctx, filter)
}

// GetLead returns one lead.
func (s *Service) GetLead(ctx context.Context, leadID string) (*models.Lead, error) {
	return s.repo.GetLead(ctx, leadID)
}

// LeadUpdate carries the mutable lead fields; blank fields are left
// untouched.
type LeadUpdate struct {
	Status    string `json:"status"`
	RepID     string `json:"repId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Product   string `json:"product"`
	Notes     string `json:"notes"`
}

// UpdateLead applies field updates to a lead. A status transition into
// qualified or sold creates the tier payout and bumps the advocate's
// pending earnings; re-asserting the same status pays nothing. The
// previous status comes from the stored record, not the caller.
func (s *Service) UpdateLead(ctx context.Context, leadID string, update LeadUpdate) (*models.Lead, error) {
	lead, err := s.repo.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}
	oldStatus := lead.Status

	if update.Status != "" {
		lead.Status = update.Status
	}
	if update.RepID != "" {
		lead.RepID = update.RepID
	}
	if update.Email != "" {
		lead.Email = update.Email
	}
	if update.FirstName != "" {
		lead.FirstName = update.FirstName
	}
	if update.LastName != "" {
		lead.LastName = update.LastName
	}
	if update.Phone != "" {
		lead.Phone = update.Phone
	}
	if update.Product != "" {
		lead.Product = update.Product
	}
	if update.Notes != "" {
		lead.Notes = update.Notes
	}
	lead.UpdatedAt = s.now().UnixMilli()

	if err := s.repo.SaveLead(ctx, lead); err != nil {
		return nil, err
	}

	switch {
	case lead.Status == models.LeadStatusQualified && oldStatus != models.LeadStatusQualified:
		if err := s.rewardLead(ctx, lead, models.PayoutTypeQualified, false); err != nil {
			return nil, err
		}
	case lead.Status == models.LeadStatusSold && oldStatus != models.LeadStatusSold:
		if err := s.rewardLead(ctx, lead, models.PayoutTypeSold, true); err != nil {
			return nil, err
		}
	}

	return lead, nil
}

// rewardLead creates the tier payout for a lead transition and bumps the
// advocate's pending earnings, plus the conversion counter for a sale.
func (s *Service) rewardLead(ctx context.Context, lead *models.Lead, payoutType string, conversion bool) error {
	payout, err := s.createPayout(ctx, lead.AdvocateID, lead.LeadID, payoutType)
	if err != nil {
		return err
	}

	advocate, err := s.repo.GetAdvocate(ctx, lead.AdvocateID)
	if err != nil {
		return err
	}
	advocate.PendingEarnings += payout.Amount
	if conversion {
		advocate.TotalConversions++
	}
	advocate.UpdatedAt = s.now().UnixMilli()
	if err := s.repo.SaveAdvocate(ctx, advocate); err != nil {
		return err
	}

	s.logger.Info("Lead payout created",
		zap.String("leadId", lead.LeadID),
		zap.String("advocateId", lead.AdvocateID),
		zap.String("type", payoutType),
		zap.Float64("amount", payout.Amount),
	)
	return nil
}

// createPayout records a pending payout of the given type.
func (s *Service) createPayout(ctx context.Context, advocateID, leadID, payoutType string) (*models.Payout, error) {
	amount, ok := models.PayoutTiers[payoutType]
	if !ok {
		return nil, fmt.Errorf("unknown payout type %q", payoutType)
	}

	nowMS := s.now().UnixMilli()
	payout := &models.Payout{
		PayoutID:   fmt.Sprintf("%s_%s", s.nextID("PAY"), payoutType),
		AdvocateID: advocateID,
		LeadID:     leadID,
		Amount:     amount,
		Type:       payoutType,
		Status:     models.PayoutStatusPending,
		Notes:      fmt.Sprintf("%s payout", payoutType),
		CreatedAt:  nowMS,
		UpdatedAt:  nowMS,
	}
	if err := s.repo.CreatePayout(ctx, payout); err != nil {
		return nil, err
	}
	return payout, nil
}

// ListPayouts returns payouts matching the filter.
func (s *Service) ListPayouts(ctx context.Context, filter PayoutFilter) ([]models.Payout, error) {
	return s.repo.ListPayouts(ctx, filter)
}

// UpdatePayoutStatus sets a payout's status. The first transition into
// paid stamps PaidAt and moves the amount from the advocate's pending to
// paid earnings; repeating it moves nothing.
func (s *Service) UpdatePayoutStatus(ctx context.Context, payoutID, status string) (*models.Payout, error) {
	payout, err := s.repo.GetPayout(ctx, payoutID)
	if err != nil {
		return nil, err
	}
	wasPaid := payout.Status == models.PayoutStatusPaid

	nowMS := s.now().UnixMilli()
	payout.Status = status
	payout.UpdatedAt = nowMS
	if status == models.PayoutStatusPaid {
		payout.PaidAt = &nowMS
	} else {
		payout.PaidAt = nil
	}

	if err := s.repo.SavePayout(ctx, payout); err != nil {
		return nil, err
	}

	if status == models.PayoutStatusPaid && !wasPaid {
		advocate, err := s.repo.GetAdvocate(ctx, payout.AdvocateID)
		if err != nil {
			return nil, err
		}
		advocate.PaidEarnings += payout.Amount
		advocate.PendingEarnings -= payout.Amount
		advocate.UpdatedAt = nowMS
		if err := s.repo.SaveAdvocate(ctx, advocate); err != nil {
			return nil, err
		}
	}

	return payout, nil
}

// ListSalesReps returns every sales rep.
func (s *Service) ListSalesReps(ctx context.Context) ([]models.SalesRep, error) {
	return s.repo.ListSalesReps(ctx)
}

// Stats computes the program-wide counters.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	advocates, err := s.repo.ListAdvocates(ctx, "")
	if err != nil {
		return nil, err
	}
	leads, err := s.repo.ListLeads(ctx, LeadFilter{})
	if err != nil {
		return nil, err
	}
	payouts, err := s.repo.ListPayouts(ctx, PayoutFilter{})
	if err != nil {
		return nil, err
	}

	stats := &models.Stats{
		TotalAdvocates: len(advocates),
		TotalLeads:     len(leads),
		LeadsByStatus:  make(map[string]int),
	}
	for _, a := range advocates {
		if a.Active {
			stats.ActiveAdvocates++
		}
	}
	for _, l := range leads {
		stats.LeadsByStatus[l.Status]++
	}
	for _, p := range payouts {
		stats.TotalPayouts += p.Amount
		switch p.Status {
		case models.PayoutStatusPending:
			stats.PendingPayouts += p.Amount
		case models.PayoutStatusPaid:
			stats.PaidPayouts += p.Amount
		}
	}
	return stats, nil
}

// Dashboard returns the rows and counters for the dashboard view,
// optionally narrowed to one rep. Payouts are not attributed to reps, so
// the payout rows stay unfiltered either way.
func (s *Service) Dashboard(ctx context.Context, repID string) (*models.Dashboard, error) {
	advocates, err := s.repo.ListAdvocates(ctx, repID)
	if err != nil {
		return nil, err
	}
	leads, err := s.repo.ListLeads(ctx, LeadFilter{RepID: repID})
	if err != nil {
		return nil, err
	}
	payouts, err := s.repo.ListPayouts(ctx, PayoutFilter{})
	if err != nil {
		return nil, err
	}

	dashboard := &models.Dashboard{
		Advocates: advocates,
		Leads:     leads,
		Payouts:   payouts,
		Stats: models.DashboardStats{
			TotalAdvocates: len(advocates),
			TotalLeads:     len(leads),
		},
	}
	for _, a := range advocates {
		dashboard.Stats.TotalEarnings += a.TotalEarnings
	}
	for _, p := range payouts {
		switch p.Status {
		case models.PayoutStatusPending:
			dashboard.Stats.PendingPayouts++
		case models.PayoutStatusPaid:
			dashboard.Stats.PaidPayouts++
		}
	}
	return dashboard, nil
}
