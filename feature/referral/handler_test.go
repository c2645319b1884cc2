package referral_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"staff-admin/core/database"
	"staff-admin/feature/referral"
	"staff-admin/feature/referral/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newReferralApp(t *testing.T) *fiber.App {
	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	assert.NoError(t, err)

	app := fiber.New()
	feature := referral.NewFeature(db, zap.NewNop())
	assert.NoError(t, feature.Load(app))
	return app
}

func postJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)

	var out map[string]json.RawMessage
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func createAdvocateHTTP(t *testing.T, app *fiber.App) models.Advocate {
	t.Helper()
	status, body := postJSON(t, app, "POST", "/referral/advocates",
		`{"repId":"REP1","email":"jo@home.test","firstName":"Jo","lastName":"Smith"}`)
	assert.Equal(t, 200, status)

	var advocate models.Advocate
	assert.NoError(t, json.Unmarshal(body["advocate"], &advocate))
	return advocate
}

func TestHandleCreateAndListAdvocates(t *testing.T) {
	app := newReferralApp(t)
	advocate := createAdvocateHTTP(t, app)
	assert.True(t, strings.HasPrefix(advocate.AdvocateID, "ADV"))

	resp, err := app.Test(httptest.NewRequest("GET", "/referral/advocates?repId=REP1", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Advocates []models.Advocate `json:"advocates"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Advocates, 1)

	// A different rep sees nobody.
	resp, err = app.Test(httptest.NewRequest("GET", "/referral/advocates?repId=REP9", nil), 2000)
	assert.NoError(t, err)
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Advocates)
}

func TestHandleGetAdvocateDetail(t *testing.T) {
	app := newReferralApp(t)
	advocate := createAdvocateHTTP(t, app)

	resp, err := app.Test(httptest.NewRequest("GET", "/referral/advocates/"+advocate.AdvocateID, nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var detail struct {
		Advocate models.Advocate `json:"advocate"`
		Payouts  []models.Payout `json:"payouts"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	assert.Equal(t, advocate.AdvocateID, detail.Advocate.AdvocateID)
	assert.Len(t, detail.Payouts, 1)

	resp, err = app.Test(httptest.NewRequest("GET", "/referral/advocates/ADV0", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleLeadLifecycle(t *testing.T) {
	app := newReferralApp(t)
	advocate := createAdvocateHTTP(t, app)

	status, body := postJSON(t, app, "POST", "/referral/leads",
		`{"advocateId":"`+advocate.AdvocateID+`","repId":"REP1","firstName":"Neighbor","lastName":"Jones"}`)
	assert.Equal(t, 200, status)

	var lead models.Lead
	assert.NoError(t, json.Unmarshal(body["lead"], &lead))
	assert.Equal(t, models.LeadStatusNew, lead.Status)

	// Qualify the lead over HTTP; pending earnings move on the advocate.
	status, body = postJSON(t, app, "PUT", "/referral/leads/"+lead.LeadID, `{"status":"qualified"}`)
	assert.Equal(t, 200, status)
	assert.NoError(t, json.Unmarshal(body["lead"], &lead))
	assert.Equal(t, models.LeadStatusQualified, lead.Status)

	resp, err := app.Test(httptest.NewRequest("GET", "/referral/advocates/"+advocate.AdvocateID, nil), 2000)
	assert.NoError(t, err)
	var detail struct {
		Advocate models.Advocate `json:"advocate"`
		Payouts  []models.Payout `json:"payouts"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	assert.Equal(t, 50.00, detail.Advocate.PendingEarnings)
	assert.Len(t, detail.Payouts, 2)
}

func TestHandleCreateLeadWithoutAdvocate(t *testing.T) {
	app := newReferralApp(t)

	status, _ := postJSON(t, app, "POST", "/referral/leads", `{"firstName":"Nobody"}`)
	assert.Equal(t, 400, status)
}

func TestHandleUpdatePayout(t *testing.T) {
	app := newReferralApp(t)
	advocate := createAdvocateHTTP(t, app)

	resp, err := app.Test(httptest.NewRequest("GET", "/referral/payouts?advocateId="+advocate.AdvocateID, nil), 2000)
	assert.NoError(t, err)
	var listing struct {
		Payouts []models.Payout `json:"payouts"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	assert.Len(t, listing.Payouts, 1)

	status, body := postJSON(t, app, "PUT", "/referral/payouts/"+listing.Payouts[0].PayoutID, `{"status":"paid"}`)
	assert.Equal(t, 200, status)

	var payout models.Payout
	assert.NoError(t, json.Unmarshal(body["payout"], &payout))
	assert.Equal(t, models.PayoutStatusPaid, payout.Status)
	assert.NotNil(t, payout.PaidAt)

	status, _ = postJSON(t, app, "PUT", "/referral/payouts/PAY0_signup", `{"status":"paid"}`)
	assert.Equal(t, 404, status)

	status, _ = postJSON(t, app, "PUT", "/referral/payouts/"+listing.Payouts[0].PayoutID, `{}`)
	assert.Equal(t, 400, status)
}

func TestHandleStatsAndDashboard(t *testing.T) {
	app := newReferralApp(t)
	createAdvocateHTTP(t, app)

	resp, err := app.Test(httptest.NewRequest("GET", "/referral/stats", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var stats models.Stats
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 1, stats.TotalAdvocates)
	assert.Equal(t, 25.00, stats.PendingPayouts)

	resp, err = app.Test(httptest.NewRequest("GET", "/referral/dashboard", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var dashboard models.Dashboard
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&dashboard))
	assert.Equal(t, 1, dashboard.Stats.TotalAdvocates)
	assert.Equal(t, 1, dashboard.Stats.PendingPayouts)
}

func TestHandleListSalesRepsEmpty(t *testing.T) {
	app := newReferralApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/referral/reps", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
