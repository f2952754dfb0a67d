package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const ownerHeader = "X-User-ID"

// Owner copies the caller-supplied user id from the X-User-ID header into the
// request locals. Identity is passed implicitly per request; there are no
// tokens or sessions.
func Owner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if uid := c.Get(ownerHeader); uid != "" {
			c.Locals("user_id", uid)
		}
		return c.Next()
	}
}
