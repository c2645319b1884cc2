// Package models contains the data structures of the referral program.
package models

// Lead lifecycle statuses.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusSold      = "sold"
)

// Payout statuses.
const (
	PayoutStatusPending = "pending"
	PayoutStatusPaid    = "paid"
)

// Payout types.
const (
	PayoutTypeSignup    = "signup"
	PayoutTypeQualified = "qualified"
	PayoutTypeSold      = "sold"
)

// PayoutTiers maps a payout type to its dollar amount: signup when an
// advocate joins, qualified when a lead becomes a good working lead,
// sold when the deal closes.
var PayoutTiers = map[string]float64{
	PayoutTypeSignup:    25.00,
	PayoutTypeQualified: 50.00,
	PayoutTypeSold:      150.00,
}

// Advocate is a homeowner who refers leads in exchange for payouts.
// Earnings counters are denormalized onto the record and bumped as leads
// move through the pipeline.
type Advocate struct {
	AdvocateID       string  `gorm:"column:advocate_id;primaryKey" json:"advocateId"`
	RepID            string  `gorm:"column:rep_id;index" json:"repId"`
	Email            string  `gorm:"column:email" json:"email"`
	FirstName        string  `gorm:"column:first_name" json:"firstName"`
	LastName         string  `gorm:"column:last_name" json:"lastName"`
	Phone            string  `gorm:"column:phone" json:"phone"`
	Address          string  `gorm:"column:address" json:"address"`
	ReferralCode     string  `gorm:"column:referral_code;uniqueIndex" json:"referralCode"`
	ReferralURL      string  `gorm:"column:referral_url" json:"referralUrl"`
	TotalEarnings    float64 `gorm:"column:total_earnings" json:"totalEarnings"`
	PendingEarnings  float64 `gorm:"column:pending_earnings" json:"pendingEarnings"`
	PaidEarnings     float64 `gorm:"column:paid_earnings" json:"paidEarnings"`
	TotalLeads       int     `gorm:"column:total_leads" json:"totalLeads"`
	TotalConversions int     `gorm:"column:total_conversions" json:"totalConversions"`
	CreatedAt        int64   `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt        int64   `gorm:"column:updated_at" json:"updatedAt"`
	Active           bool    `gorm:"column:active" json:"active"`
	EmailVerified    bool    `gorm:"column:email_verified" json:"emailVerified"`
	Source           string  `gorm:"column:source" json:"source"`
}

// TableName returns the database table name for advocates.
func (Advocate) TableName() string {
	return "advocates"
}

// Lead is a referred prospect, attributed to an advocate and a sales rep.
type Lead struct {
	LeadID     string `gorm:"column:lead_id;primaryKey" json:"leadId"`
	AdvocateID string `gorm:"column:advocate_id;index" json:"advocateId"`
	RepID      string `gorm:"column:rep_id;index" json:"repId"`
	Status     string `gorm:"column:status;index" json:"status"`
	Email      string `gorm:"column:email" json:"email"`
	FirstName  string `gorm:"column:first_name" json:"firstName"`
	LastName   string `gorm:"column:last_name" json:"lastName"`
	Phone      string `gorm:"column:phone" json:"phone"`
	Address    string `gorm:"column:address" json:"address"`
	Product    string `gorm:"column:product" json:"product"`
	Source     string `gorm:"column:source" json:"source"`
	Notes      string `gorm:"column:notes" json:"notes"`
	CreatedAt  int64  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  int64  `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName returns the database table name for leads.
func (Lead) TableName() string {
	return "leads"
}

// Payout is money owed or paid to an advocate for a pipeline event.
// PaidAt is nil until the payout is marked paid.
type Payout struct {
	PayoutID   string  `gorm:"column:payout_id;primaryKey" json:"payoutId"`
	AdvocateID string  `gorm:"column:advocate_id;index" json:"advocateId"`
	LeadID     string  `gorm:"column:lead_id" json:"leadId"`
	Amount     float64 `gorm:"column:amount" json:"amount"`
	Type       string  `gorm:"column:type" json:"type"`
	Status     string  `gorm:"column:status;index" json:"status"`
	Notes      string  `gorm:"column:notes" json:"notes"`
	CreatedAt  int64   `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  int64   `gorm:"column:updated_at" json:"updatedAt"`
	PaidAt     *int64  `gorm:"column:paid_at" json:"paidAt"`
}

// TableName returns the database table name for payouts.
func (Payout) TableName() string {
	return "payouts"
}

// SalesRep is a rep advocates and leads are attributed to.
type SalesRep struct {
	RepID  string `gorm:"column:rep_id;primaryKey" json:"repId"`
	Name   string `gorm:"column:name" json:"name"`
	Email  string `gorm:"column:email" json:"email"`
	Phone  string `gorm:"column:phone" json:"phone"`
	Active bool   `gorm:"column:active" json:"active"`
}

// TableName returns the database table name for sales reps.
func (SalesRep) TableName() string {
	return "sales_reps"
}

// Stats aggregates the program-wide counters.
type Stats struct {
	TotalAdvocates  int            `json:"totalAdvocates"`
	ActiveAdvocates int            `json:"activeAdvocates"`
	TotalLeads      int            `json:"totalLeads"`
	LeadsByStatus   map[string]int `json:"leadsByStatus"`
	TotalPayouts    float64        `json:"totalPayouts"`
	PendingPayouts  float64        `json:"pendingPayouts"`
	PaidPayouts     float64        `json:"paidPayouts"`
}

// DashboardStats are the compact counters shown on the rep dashboard.
// Unlike Stats, the payout figures here are counts, not dollar sums.
type DashboardStats struct {
	TotalAdvocates int     `json:"totalAdvocates"`
	TotalLeads     int     `json:"totalLeads"`
	TotalEarnings  float64 `json:"totalEarnings"`
	PendingPayouts int     `json:"pendingPayouts"`
	PaidPayouts    int     `json:"paidPayouts"`
}

// Dashboard bundles the rows and counters for the dashboard view.
type Dashboard struct {
	Advocates []Advocate     `json:"advocates"`
	Leads     []Lead         `json:"leads"`
	Payouts   []Payout       `json:"payouts"`
	Stats     DashboardStats `json:"stats"`
}
