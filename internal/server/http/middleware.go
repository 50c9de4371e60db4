package http

import (
	"github.com/finbuddy/finbuddy/internal/server/auth"
	"github.com/gofiber/fiber/v2"
)

// userIDKey is the locals key under which the authenticated subject id is
// stored for handlers.
const userIDKey = "userID"

// authMiddleware resolves the bearer token into a user id. Every failure
// mode gets the same 401 body so a probing client learns nothing about
// which check rejected it.
func authMiddleware(codec *auth.TokenCodec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := codec.ResolveIdentity(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return unauthorized(c, "not authenticated")
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// currentUserID returns the subject id stored by authMiddleware.
func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
