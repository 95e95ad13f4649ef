package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"flag-quiz/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestLogger())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString(RequestID(c)) })
	app.Get("/missing", func(c *fiber.Ctx) error { return domain.NewSessionNotFoundError("x") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })
	return app
}

func TestRequestLogger_AssignsRequestID(t *testing.T) {
	resp, err := newLoggedApp().Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	id := resp.Header.Get(RequestIDHeader)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)
}

func TestRequestLogger_KeepsValidIncomingID(t *testing.T) {
	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, incoming)

	resp, err := newLoggedApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, incoming, resp.Header.Get(RequestIDHeader))
}

func TestRequestLogger_ReplacesGarbageID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "<script>")

	resp, err := newLoggedApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEqual(t, "<script>", resp.Header.Get(RequestIDHeader))
}

func TestRequestLogger_ErrorStatusReachesClient(t *testing.T) {
	app := newLoggedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
