package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/auth"
)

// OwnerLocalKey is the locals key holding the authenticated owner.
const OwnerLocalKey = "owner"

// TokenVerifier resolves a bearer token to its owner.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireOwner rejects requests without a valid bearer token with 401 and
// stores the token subject under OwnerLocalKey.
func RequireOwner(v TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		owner, err := v.Verify(strings.TrimSpace(token))
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			return fiber.NewError(fiber.StatusUnauthorized, "token expired")
		case err != nil:
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(OwnerLocalKey, owner)
		return c.Next()
	}
}

// Owner returns the owner stored by RequireOwner, or "".
func Owner(c *fiber.Ctx) string {
	owner, _ := c.Locals(OwnerLocalKey).(string)
	return owner
}
