package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/http/middleware"
	"resumeapi/internal/wire"
)

var errEmptyBody = errors.New("request body is required")

// respond writes v as the ok arm of the response discriminant.
func respond[T any](c *fiber.Ctx, status int, v T) error {
	return c.Status(status).JSON(wire.Ok(v))
}

// decode reads a JSON body with the app's decoder.
func decode(c *fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return errEmptyBody
	}
	return c.App().Config().JSONDecoder(c.Body(), v)
}

func invalidBody(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
}

// pathID parses the :id parameter as a wire id.
func pathID(c *fiber.Ctx) (string, error) {
	n, err := wire.ParseID(c.Params("id"))
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func invalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

func owner(c *fiber.Ctx) string { return middleware.Owner(c) }
