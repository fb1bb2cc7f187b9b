package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/database"
	"resumeapi/internal/render"
)

// HealthCheck reports healthy when the database answers a ping.
//
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} wire.Error
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		if err := database.Ping(c.UserContext(), db); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 as long as the process serves requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListTemplates returns the ids accepted by render and link endpoints.
//
// @Summary List resume templates
// @Tags resume
// @Produce json
// @Router /templates [get]
func ListTemplates() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return respond(c, fiber.StatusOK, render.Templates())
	}
}

// TokenIssuer signs owner tokens.
type TokenIssuer interface {
	Issue(owner string) (string, time.Time, error)
}

type tokenRequest struct {
	Owner string `json:"owner"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IssueToken hands out tokens for any owner. It is only mounted when dev
// tokens are enabled.
//
// @Summary Issue a development token
// @Tags auth
// @Accept json
// @Produce json
// @Router /auth/token [post]
func IssueToken(issuer TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req tokenRequest
		if err := decode(c, &req); err != nil {
			return invalidBody(c)
		}
		if req.Owner == "" {
			return writeError(c, fiber.StatusBadRequest, "OWNER_REQUIRED", "owner is required")
		}
		token, exp, err := issuer.Issue(req.Owner)
		if err != nil {
			return serviceError(c, err)
		}
		return respond(c, fiber.StatusCreated, tokenResponse{Token: token, ExpiresAt: exp})
	}
}
