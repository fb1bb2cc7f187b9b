package service

import (
	"database/sql"
	"errors"
	"fmt"

	"resumeapi/internal/render"
)

var (
	ErrIDRequired       = errors.New("id is required")
	ErrInvalidID        = errors.New("id must be a positive integer")
	ErrNotFound         = errors.New("record not found")
	ErrValidation       = errors.New("validation failed")
	ErrInvalidPath      = errors.New("path must be 3 to 100 letters or digits")
	ErrPathTaken        = errors.New("path is already taken")
	ErrForbidden        = errors.New("access denied")
	ErrLinkExpired      = errors.New("link has expired")
	ErrPasswordRequired = errors.New("link is password protected")
	ErrUnknownTemplate  = render.ErrUnknownTemplate
	ErrUnavailable      = errors.New("feature is not configured")
)

// invalid wraps field errors so callers can match ErrValidation and still
// reach the *model.ValidationError.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// notFound maps a missing row onto ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
