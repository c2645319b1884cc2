package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's ray id.
const HeaderName = "X-Ray-Id"

// LocalsKey is the fiber locals key under which the ray id is stored.
const LocalsKey = "ray_id"

// New returns a middleware that assigns a unique ray id to every request.
// The id is stored in locals for logger correlation and echoed in the
// response headers so clients can report it.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Honor an incoming ray id (e.g. from an upstream proxy), otherwise mint one.
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}
