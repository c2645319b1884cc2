package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"staff-admin/feature/employee"
	"staff-admin/feature/employee/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newTestApp(t *testing.T) (*fiber.App, *employee.Service) {
	svc := newTestService(t, nil, false, "")
	app := fiber.New()
	employee.NewHandler(svc).RegisterRoutes(app)
	return app, svc
}

func TestHandleGetEmployees(t *testing.T) {
	app, svc := newTestApp(t)
	seedService(t, svc)

	req := httptest.NewRequest("GET", "/employees", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Employees []models.Employee `json:"employees"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Employees, 2)
	assert.Equal(t, "JS1001", body.Employees[0].EmployeeID)
}

func TestHandleReplaceEmployees(t *testing.T) {
	app, svc := newTestApp(t)
	seedService(t, svc)

	payload := `{"employees":[{"employeeId":"BK1003","firstName":"Bo","lastName":"Kim","terminated":"No"}]}`
	req := httptest.NewRequest("POST", "/employees", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, svc.All(), 1)
	assert.Equal(t, "BK1003", svc.All()[0].EmployeeID)
}

func TestHandleReplaceEmployeesBadPayload(t *testing.T) {
	app, svc := newTestApp(t)
	seedService(t, svc)

	req := httptest.NewRequest("POST", "/employees", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	// The roster is untouched on a rejected payload.
	assert.Len(t, svc.All(), 2)
}

func multipartCSV(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestHandleImportMultipart(t *testing.T) {
	app, svc := newTestApp(t)
	seedService(t, svc)

	body, contentType := multipartCSV(t, "roster.csv", importCSV)
	req := httptest.NewRequest("POST", "/employees/import", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result struct {
		Summary struct {
			Added      int `json:"added"`
			Terminated int `json:"terminated"`
			Unchanged  int `json:"unchanged"`
		} `json:"summary"`
		DryRun    bool `json:"dryRun"`
		Persisted bool `json:"persisted"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 1, result.Summary.Added)
	assert.Equal(t, 1, result.Summary.Terminated)
	assert.False(t, result.DryRun)
	assert.True(t, result.Persisted)
	assert.Len(t, svc.All(), 3)
}

func TestHandleImportRawBodyDryRun(t *testing.T) {
	app, svc := newTestApp(t)
	seedService(t, svc)

	req := httptest.NewRequest("POST", "/employees/import?dry_run=true", strings.NewReader(importCSV))
	req.Header.Set("Content-Type", "text/csv")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result struct {
		DryRun    bool `json:"dryRun"`
		Persisted bool `json:"persisted"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.DryRun)
	assert.False(t, result.Persisted)
	assert.Len(t, svc.All(), 2)
}

func TestHandleImportRejectsExcel(t *testing.T) {
	app, svc := newTestApp(t)
	seedService(t, svc)

	body, contentType := multipartCSV(t, "roster.xlsx", "not a csv")
	req := httptest.NewRequest("POST", "/employees/import", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var result struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Contains(t, result.Error, "excel files are not supported")
	assert.Len(t, svc.All(), 2)
}

func TestHandleImportParseError(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/employees/import", strings.NewReader(""))
	req.Header.Set("Content-Type", "text/csv")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleUndo(t *testing.T) {
	app, svc := newTestApp(t)
	seedService(t, svc)

	// Nothing imported since seeding... except seeding itself snapshots,
	// so drain that first.
	_, err := svc.Undo(context.Background())
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", "/employees/undo", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)

	// After an import there is something to undo.
	seedService(t, svc)
	body, contentType := multipartCSV(t, "roster.csv", importCSV)
	importReq := httptest.NewRequest("POST", "/employees/import", body)
	importReq.Header.Set("Content-Type", contentType)
	_, err = app.Test(importReq, 2000)
	assert.NoError(t, err)
	assert.Len(t, svc.All(), 3)

	resp, err = app.Test(httptest.NewRequest("POST", "/employees/undo", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, svc.All(), 2)
}

func TestHandleDuplicates(t *testing.T) {
	app, svc := newTestApp(t)
	assert.NoError(t, svc.ReplaceAll(context.Background(), []models.Employee{
		{FirstName: "Jo", LastName: "Smith", Email: "jo@corp.test", Terminated: "No"},
		{FirstName: "Joanne", LastName: "Smith", Email: "JO@corp.test", Terminated: "No"},
	}))

	req := httptest.NewRequest("GET", "/employees/duplicates", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Duplicates []struct {
			MatchType string `json:"matchType"`
			Group     int    `json:"group"`
		} `json:"duplicates"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Duplicates)
}

func TestHandleMerge(t *testing.T) {
	app, svc := newTestApp(t)
	assert.NoError(t, svc.ReplaceAll(context.Background(), []models.Employee{
		{FirstName: "Jo", LastName: "Smith", Email: "jo@corp.test", Terminated: "No"},
		{FirstName: "Joanne", LastName: "Smith", Email: "jo@corp.test", Terminated: "No"},
	}))

	payload := `{"employees":[
		{"firstName":"Jo","lastName":"Smith","email":"jo@corp.test"},
		{"firstName":"Joanne","lastName":"Smith","email":"jo@corp.test"}
	]}`
	req := httptest.NewRequest("POST", "/employees/merge", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Employee  models.Employee `json:"employee"`
		Persisted bool            `json:"persisted"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Joanne", body.Employee.FirstName)
	assert.True(t, body.Persisted)
	assert.Len(t, svc.All(), 1)
}

func TestHandleMergeTooFewRecords(t *testing.T) {
	app, _ := newTestApp(t)

	payload := `{"employees":[{"firstName":"Jo","lastName":"Smith"}]}`
	req := httptest.NewRequest("POST", "/employees/merge", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleTerminateAndReactivate(t *testing.T) {
	app, svc := newTestApp(t)
	seedService(t, svc)

	resp, err := app.Test(httptest.NewRequest("POST", "/employees/0/terminate", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	active, terminated := activeCount(svc.All())
	assert.Equal(t, 1, active)
	assert.Equal(t, 1, terminated)

	resp, err = app.Test(httptest.NewRequest("POST", "/employees/0/reactivate", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	active, terminated = activeCount(svc.All())
	assert.Equal(t, 2, active)
	assert.Zero(t, terminated)
}

func TestHandleTerminateBadIndex(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/employees/abc/terminate", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/employees/99/terminate", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
