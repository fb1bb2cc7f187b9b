package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeapi/internal/auth"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/api/v1/resume", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "generated when absent", incoming: ""},
		{name: "caller id is echoed", incoming: "cli-sync-7f3a", wantSame: true},
		{name: "oversized id is replaced", incoming: strings.Repeat("x", maxRequestIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/api/v1/resume", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)

			got := resp.Header.Get(RequestIDHeader)
			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, got, string(body), "handler sees the same id as the response header")
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
				return
			}
			assert.Len(t, got, 36)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	jakarta := time.FixedZone("WIB", 7*60*60)

	app := fiber.New()
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, jakarta))
	app.Post("/api/v1/score", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/score", nil)
	req.Header.Set(RequestIDHeader, "score-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "score-1", line["request_id"])
	assert.Equal(t, fiber.MethodPost, line["method"])
	assert.Equal(t, "/api/v1/score", line["path"])
	assert.EqualValues(t, fiber.StatusCreated, line["status"])
	assert.Contains(t, line, "latency")
	assert.NotContains(t, line, "owner")

	ts, err := time.Parse(time.RFC3339Nano, line["ts"].(string))
	require.NoError(t, err)
	_, offset := ts.Zone()
	assert.Equal(t, 7*60*60, offset)
}

func TestLogger_ErrorStatusAndOwner(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, time.UTC))
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(OwnerLocalKey, "owner-1")
		return c.Next()
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "taken")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var logData map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
	assert.Equal(t, float64(fiber.StatusConflict), logData["status"])
	assert.Equal(t, "owner-1", logData["owner"])
}

type fakeVerifier map[string]string

func (f fakeVerifier) Verify(token string) (string, error) {
	switch token {
	case "expired":
		return "", auth.ErrTokenExpired
	}
	owner, ok := f[token]
	if !ok {
		return "", auth.ErrInvalidToken
	}
	return owner, nil
}

func TestRequireOwner(t *testing.T) {
	app := fiber.New()
	app.Use(RequireOwner(fakeVerifier{"good": "owner-1"}))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.SendString(Owner(c))
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer good", wantStatus: fiber.StatusOK, wantBody: "owner-1"},
		{name: "missing header", header: "", wantStatus: fiber.StatusUnauthorized, wantBody: "missing bearer token"},
		{name: "wrong scheme", header: "Basic good", wantStatus: fiber.StatusUnauthorized, wantBody: "missing bearer token"},
		{name: "unknown token", header: "Bearer bad", wantStatus: fiber.StatusUnauthorized, wantBody: "invalid token"},
		{name: "expired token", header: "Bearer expired", wantStatus: fiber.StatusUnauthorized, wantBody: "token expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimiter(2, time.Minute))
	app.Get("/check", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/check", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/check", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
