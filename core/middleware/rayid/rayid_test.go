package rayid_test

import (
	"net/http/httptest"
	"testing"

	"staff-admin/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())

	var captured string
	app.Get("/", func(c *fiber.Ctx) error {
		captured, _ = c.Locals(rayid.LocalsKey).(string)
		return c.SendString("ok")
	})

	t.Run("Generates Id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.NotEmpty(t, captured)
		assert.Equal(t, captured, resp.Header.Get(rayid.HeaderName))
	})

	t.Run("Honors Incoming Id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.HeaderName, "upstream-id")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, "upstream-id", captured)
		assert.Equal(t, "upstream-id", resp.Header.Get(rayid.HeaderName))
	})
}
