package employee

import (
	"errors"
	"io"

	"staff-admin/core/logger"
	"staff-admin/feature/employee/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the employee roster.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the employee routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/employees")
	group.Get("/", h.HandleGetEmployees)
	group.Post("/", h.HandleReplaceEmployees)
	group.Post("/import", h.HandleImport)
	group.Post("/import/sheet", h.HandleImportFromSheet)
	group.Post("/undo", h.HandleUndo)
	group.Get("/duplicates", h.HandleDuplicates)
	group.Post("/merge", h.HandleMerge)
	group.Get("/imports/archive", h.HandleListArchives)
	group.Get("/imports/archive/+", h.HandleGetArchive)
	group.Post("/:index/terminate", h.HandleTerminate)
	group.Post("/:index/reactivate", h.HandleReactivate)
}

type rosterPayload struct {
	Employees []models.Employee `json:"employees"`
}

// importResponse renders an ImportResult, surfacing a persistence failure
// as its own field rather than folding it into a request error.
func importResponse(c *fiber.Ctx, res *ImportResult) error {
	body := fiber.Map{
		"summary":   res.Summary,
		"dryRun":    res.DryRun,
		"persisted": res.Persisted,
	}
	if res.PersistErr != nil {
		body["persistError"] = res.PersistErr.Error()
	}
	return c.JSON(body)
}

// HandleGetEmployees returns the full roster.
// @Summary Get Employees
// @Description Get the full roster, active and terminated intermixed, distinguished by the terminated field.
// @Tags employees
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Roster"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /employees [get]
func (h *Handler) HandleGetEmployees(c *fiber.Ctx) error {
	return c.JSON(rosterPayload{Employees: h.service.All()})
}

// HandleReplaceEmployees replaces the entire stored collection.
// @Summary Replace Employees
// @Description Replace the full stored roster. No partial update, no version check, last writer wins.
// @Tags employees
// @Accept json
// @Produce json
// @Param roster body rosterPayload true "Full roster"
// @Success 200 {object} map[string]interface{} "Replace result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /employees [post]
func (h *Handler) HandleReplaceEmployees(c *fiber.Ctx) error {
	var payload rosterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid roster payload: " + err.Error(),
		})
	}

	l := logger.WithRayID(h.service.logger, c)
	if err := h.service.ReplaceAll(c.Context(), payload.Employees); err != nil {
		// The in-memory roster already holds the new collection; only the
		// save failed. Report that distinctly so the client can retry.
		l.Error("Roster replaced in memory but not persisted", zap.Error(err))
		return c.JSON(fiber.Map{
			"persisted":    false,
			"persistError": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"persisted": true, "count": len(payload.Employees)})
}

// HandleImport runs a smart import from an uploaded CSV.
// @Summary Smart Import
// @Description Reconcile an uploaded roster CSV against the current roster: new people are added, missing people are terminated, known people are left untouched.
// @Tags employees
// @Accept mpfd
// @Produce json
// @Param file formData file false "Roster CSV (multipart); alternatively send the CSV as the raw request body"
// @Param dry_run query boolean false "Plan without applying"
// @Success 200 {object} map[string]interface{} "Import result"
// @Failure 400 {object} map[string]string "Parse error"
// @Router /employees/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	dryRun := c.Query("dry_run") == "true"

	filename := ""
	data := c.Body()

	if file, err := c.FormFile("file"); err == nil && file != nil {
		filename = file.Filename
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "failed to read upload: " + err.Error(),
			})
		}
		defer f.Close()

		buf, err := io.ReadAll(f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "failed to read upload: " + err.Error(),
			})
		}
		data = buf
	}

	result, err := h.service.ImportCSV(c.Context(), filename, data, dryRun)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, ErrExcelUpload) {
			// Not a parse failure: a usage instruction.
			l.Info("Rejected excel upload", zap.String("filename", filename))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return importResponse(c, result)
}

// HandleImportFromSheet runs a smart import from the configured sheet export.
// @Summary Smart Import From Sheet
// @Description Download the configured spreadsheet CSV export and reconcile it against the current roster.
// @Tags employees
// @Accept json
// @Produce json
// @Param dry_run query boolean false "Plan without applying"
// @Success 200 {object} map[string]interface{} "Import result"
// @Failure 400 {object} map[string]string "Fetch or parse error"
// @Router /employees/import/sheet [post]
func (h *Handler) HandleImportFromSheet(c *fiber.Ctx) error {
	dryRun := c.Query("dry_run") == "true"

	result, err := h.service.ImportFromSheet(c.Context(), dryRun)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return importResponse(c, result)
}

// HandleUndo restores the roster to the state before the last import.
// @Summary Undo Import
// @Description Restore the roster to the snapshot taken before the most recent import, replace, or merge. Only one undo level is retained.
// @Tags employees
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Undo result"
// @Failure 409 {object} map[string]string "Nothing to undo"
// @Router /employees/undo [post]
func (h *Handler) HandleUndo(c *fiber.Ctx) error {
	result, err := h.service.Undo(c.Context())
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return importResponse(c, result)
}

// HandleDuplicates reports likely duplicate records.
// @Summary Find Duplicates
// @Description Scan the full roster and report records sharing an email, last name, or full name. A record matching on several key types is reported once per type.
// @Tags employees
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Duplicate sightings"
// @Router /employees/duplicates [get]
func (h *Handler) HandleDuplicates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"duplicates": h.service.Duplicates()})
}

// HandleMerge merges duplicate records into one.
// @Summary Merge Duplicates
// @Description Merge the posted records into a single one under the per-field merge policy, replacing every matching roster record.
// @Tags employees
// @Accept json
// @Produce json
// @Param group body rosterPayload true "Records to merge (at least two)"
// @Success 200 {object} map[string]interface{} "Merged record"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /employees/merge [post]
func (h *Handler) HandleMerge(c *fiber.Ctx) error {
	var payload rosterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid merge payload: " + err.Error(),
		})
	}

	merged, result, err := h.service.MergeGroup(c.Context(), payload.Employees)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	body := fiber.Map{"employee": merged, "persisted": result.Persisted}
	if result.PersistErr != nil {
		body["persistError"] = result.PersistErr.Error()
	}
	return c.JSON(body)
}

// HandleListArchives lists archived import files.
// @Summary List Import Archives
// @Description List the object names of archived import CSV files.
// @Tags employees
// @Produce json
// @Success 200 {object} map[string]interface{} "Archive names"
// @Failure 500 {object} map[string]string "Storage error"
// @Router /employees/imports/archive [get]
func (h *Handler) HandleListArchives(c *fiber.Ctx) error {
	names, err := h.service.ListArchives(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"archives": names})
}

// HandleGetArchive returns one archived import file.
// @Summary Get Import Archive
// @Description Download an archived import CSV by object name.
// @Tags employees
// @Produce plain
// @Param name path string true "Object name"
// @Success 200 {string} string "CSV content"
// @Failure 500 {object} map[string]string "Storage error"
// @Router /employees/imports/archive/{name} [get]
func (h *Handler) HandleGetArchive(c *fiber.Ctx) error {
	name := c.Params("+")
	data, err := h.service.FetchArchive(c.Context(), name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set("Content-Type", "text/csv")
	return c.Send(data)
}

// HandleTerminate terminates the active record at the given index.
// @Summary Terminate Employee
// @Description Move the active record at the given index to the terminated partition, stamping today's date.
// @Tags employees
// @Accept json
// @Produce json
// @Param index path int true "Index into the active roster"
// @Success 200 {object} map[string]interface{} "Result"
// @Failure 400 {object} map[string]string "Bad index"
// @Router /employees/{index}/terminate [post]
func (h *Handler) HandleTerminate(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index must be a number"})
	}

	result, err := h.service.Terminate(c.Context(), index)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return importResponse(c, result)
}

// HandleReactivate reactivates the terminated record at the given index.
// @Summary Reactivate Employee
// @Description Move the terminated record at the given index back to the active partition, clearing its termination date.
// @Tags employees
// @Accept json
// @Produce json
// @Param index path int true "Index into the terminated roster"
// @Success 200 {object} map[string]interface{} "Result"
// @Failure 400 {object} map[string]string "Bad index"
// @Router /employees/{index}/reactivate [post]
func (h *Handler) HandleReactivate(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index must be a number"})
	}

	result, err := h.service.Reactivate(c.Context(), index)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return importResponse(c, result)
}
