package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/http/middleware"
	"resumeapi/internal/logging"
	"resumeapi/internal/model"
	"resumeapi/internal/service"
	"resumeapi/internal/wire"
)

// errorPayload is the err arm of the response discriminant.
type errorPayload = wire.Result[struct{}]

// writeError writes the standardized error body. message must be safe to
// show to clients.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := wire.Err[struct{}](code, message)
	res.RequestID = middleware.GetRequestID(c)
	return c.Status(status).JSON(res)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", fe.Message)
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		case fiber.StatusTooManyRequests:
			return writeError(c, status, "RATE_LIMITED", "too many requests")
		default:
			logging.JSON(nil, map[string]any{
				"component":     "http",
				"event":         "unhandled_error",
				"status":        "error",
				"request_id":    middleware.GetRequestID(c),
				"error_message": err.Error(),
			})
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}

// serviceError maps service sentinels onto status codes. Anything else is
// logged and reported as an internal error.
func serviceError(c *fiber.Ctx, err error) error {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", verr.Error())
	case errors.Is(err, service.ErrValidation):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "id is required")
	case errors.Is(err, service.ErrInvalidID):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	case errors.Is(err, service.ErrInvalidPath):
		return writeError(c, fiber.StatusBadRequest, "INVALID_PATH", service.ErrInvalidPath.Error())
	case errors.Is(err, service.ErrUnknownTemplate):
		return writeError(c, fiber.StatusBadRequest, "UNKNOWN_TEMPLATE", "unknown template")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrPathTaken):
		return writeError(c, fiber.StatusConflict, "PATH_TAKEN", service.ErrPathTaken.Error())
	case errors.Is(err, service.ErrPasswordRequired):
		return writeError(c, fiber.StatusUnauthorized, "PASSWORD_REQUIRED", service.ErrPasswordRequired.Error())
	case errors.Is(err, service.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", service.ErrForbidden.Error())
	case errors.Is(err, service.ErrLinkExpired):
		return writeError(c, fiber.StatusGone, "LINK_EXPIRED", service.ErrLinkExpired.Error())
	case errors.Is(err, service.ErrUnavailable):
		return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", service.ErrUnavailable.Error())
	}

	logging.JSON(nil, map[string]any{
		"component":     "http",
		"event":         "request_failed",
		"status":        "error",
		"request_id":    middleware.GetRequestID(c),
		"path":          c.Path(),
		"error_message": err.Error(),
	})
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
