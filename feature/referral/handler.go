package referral

import (
	"errors"

	"staff-admin/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for the referral program.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the referral routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/referral")
	group.Get("/advocates", h.HandleListAdvocates)
	group.Post("/advocates", h.HandleCreateAdvocate)
	group.Get("/advocates/:id", h.HandleGetAdvocate)
	group.Put("/advocates/:id", h.HandleUpdateAdvocate)
	group.Get("/leads", h.HandleListLeads)
	group.Post("/leads", h.HandleCreateLead)
	group.Get("/leads/:id", h.HandleGetLead)
	group.Put("/leads/:id", h.HandleUpdateLead)
	group.Get("/payouts", h.HandleListPayouts)
	group.Put("/payouts/:id", h.HandleUpdatePayout)
	group.Get("/reps", h.HandleListSalesReps)
	group.Get("/stats", h.HandleStats)
	group.Get("/dashboard", h.HandleDashboard)
}

// respondError maps a service error onto an HTTP status.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, gorm.ErrRecordNotFound) {
		status = fiber.StatusNotFound
	}

	l := logger.WithRayID(h.service.logger, c)
	if status == fiber.StatusInternalServerError {
		l.Error("Referral request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleListAdvocates lists advocates.
// @Summary List Advocates
// @Description List advocates, optionally filtered to one sales rep.
// @Tags referral
// @Produce json
// @Param repId query string false "Sales rep filter"
// @Success 200 {object} map[string]interface{} "Advocates"
// @Router /referral/advocates [get]
func (h *Handler) HandleListAdvocates(c *fiber.Ctx) error {
	advocates, err := h.service.ListAdvocates(c.Context(), c.Query("repId"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"advocates": advocates})
}

// HandleCreateAdvocate registers a new advocate.
// @Summary Create Advocate
// @Description Register a new advocate; a pending signup payout is recorded alongside.
// @Tags referral
// @Accept json
// @Produce json
// @Param advocate body AdvocateInput true "New advocate"
// @Success 200 {object} map[string]interface{} "Created advocate"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /referral/advocates [post]
func (h *Handler) HandleCreateAdvocate(c *fiber.Ctx) error {
	var input AdvocateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	advocate, err := h.service.CreateAdvocate(c.Context(), input)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"advocate": advocate})
}

// HandleGetAdvocate returns one advocate with leads and payouts.
// @Summary Get Advocate
// @Description Get one advocate together with their leads and payouts.
// @Tags referral
// @Produce json
// @Param id path string true "Advocate id"
// @Success 200 {object} AdvocateDetail "Advocate detail"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /referral/advocates/{id} [get]
func (h *Handler) HandleGetAdvocate(c *fiber.Ctx) error {
	detail, err := h.service.GetAdvocate(c.Context(), c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(detail)
}

// HandleUpdateAdvocate applies field updates to an advocate.
// @Summary Update Advocate
// @Description Update advocate contact fields; blank fields are left untouched.
// @Tags referral
// @Accept json
// @Produce json
// @Param id path string true "Advocate id"
// @Param update body AdvocateUpdate true "Field updates"
// @Success 200 {object} map[string]interface{} "Updated advocate"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /referral/advocates/{id} [put]
func (h *Handler) HandleUpdateAdvocate(c *fiber.Ctx) error {
	var update AdvocateUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	advocate, err := h.service.UpdateAdvocate(c.Context(), c.Params("id"), update)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"advocate": advocate})
}

// HandleListLeads lists leads.
// @Summary List Leads
// @Description List leads, filtered by advocate, rep, or status.
// @Tags referral
// @Produce json
// @Param advocateId query string false "Advocate filter"
// @Param repId query string false "Sales rep filter"
// @Param status query string false "Status filter"
// @Success 200 {object} map[string]interface{} "Leads"
// @Router /referral/leads [get]
func (h *Handler) HandleListLeads(c *fiber.Ctx) error {
	leads, err := h.service.ListLeads(c.Context(), LeadFilter{
		AdvocateID: c.Query("advocateId"),
		RepID:      c.Query("repId"),
		Status:     c.Query("status"),
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"leads": leads})
}

// HandleCreateLead records a new referred lead.
// @Summary Create Lead
// @Description Record a new referred lead and bump the advocate's lead count.
// @Tags referral
// @Accept json
// @Produce json
// @Param lead body LeadInput true "New lead"
// @Success 200 {object} map[string]interface{} "Created lead"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /referral/leads [post]
func (h *Handler) HandleCreateLead(c *fiber.Ctx) error {
	var input LeadInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lead, err := h.service.CreateLead(c.Context(), input)
	if err != nil {
		if input.AdvocateID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"lead": lead})
}

// HandleGetLead returns one lead.
// @Summary Get Lead
// @Description Get one lead by id.
// @Tags referral
// @Produce json
// @Param id path string true "Lead id"
// @Success 200 {object} map[string]interface{} "Lead"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /referral/leads/{id} [get]
func (h *Handler) HandleGetLead(c *fiber.Ctx) error {
	lead, err := h.service.GetLead(c.Context(), c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"lead": lead})
}

// HandleUpdateLead applies field updates to a lead, paying transition tiers.
// @Summary Update Lead
// @Description Update a lead; the first transition into qualified or sold creates the tier payout and bumps the advocate's pending earnings.
// @Tags referral
// @Accept json
// @Produce json
// @Param id path string true "Lead id"
// @Param update body LeadUpdate true "Field updates"
// @Success 200 {object} map[string]interface{} "Updated lead"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /referral/leads/{id} [put]
func (h *Handler) HandleUpdateLead(c *fiber.Ctx) error {
	var update LeadUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lead, err := h.service.UpdateLead(c.Context(), c.Params("id"), update)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"lead": lead})
}

// HandleListPayouts lists payouts.
// @Summary List Payouts
// @Description List payouts, filtered by advocate or status.
// @Tags referral
// @Produce json
// @Param advocateId query string false "Advocate filter"
// @Param status query string false "Status filter"
// @Success 200 {object} map[string]interface{} "Payouts"
// @Router /referral/payouts [get]
func (h *Handler) HandleListPayouts(c *fiber.Ctx) error {
	payouts, err := h.service.ListPayouts(c.Context(), PayoutFilter{
		AdvocateID: c.Query("advocateId"),
		Status:     c.Query("status"),
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"payouts": payouts})
}

type payoutUpdatePayload struct {
	Status string `json:"status"`
}

// HandleUpdatePayout sets a payout's status.
// @Summary Update Payout
// @Description Set a payout's status; marking it paid moves the amount from the advocate's pending to paid earnings, once.
// @Tags referral
// @Accept json
// @Produce json
// @Param id path string true "Payout id"
// @Param update body payoutUpdatePayload true "New status"
// @Success 200 {object} map[string]interface{} "Updated payout"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /referral/payouts/{id} [put]
func (h *Handler) HandleUpdatePayout(c *fiber.Ctx) error {
	var payload payoutUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if payload.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status is required"})
	}

	payout, err := h.service.UpdatePayoutStatus(c.Context(), c.Params("id"), payload.Status)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"payout": payout})
}

// HandleListSalesReps lists every sales rep.
// @Summary List Sales Reps
// @Description List every sales rep.
// @Tags referral
// @Produce json
// @Success 200 {object} map[string]interface{} "Sales reps"
// @Router /referral/reps [get]
func (h *Handler) HandleListSalesReps(c *fiber.Ctx) error {
	reps, err := h.service.ListSalesReps(c.Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"salesReps": reps})
}

// HandleStats returns the program-wide counters.
// @Summary Referral Stats
// @Description Get program-wide advocate, lead, and payout counters.
// @Tags referral
// @Produce json
// @Success 200 {object} models.Stats "Stats"
// @Router /referral/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(stats)
}

// HandleDashboard returns the dashboard view.
// @Summary Referral Dashboard
// @Description Get advocates, leads, payouts, and counters, optionally narrowed to one rep.
// @Tags referral
// @Produce json
// @Param repId query string false "Sales rep filter"
// @Success 200 {object} models.Dashboard "Dashboard"
// @Router /referral/dashboard [get]
func (h *Handler) HandleDashboard(c *fiber.Ctx) error {
	dashboard, err := h.service.Dashboard(c.Context(), c.Query("repId"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(dashboard)
}
