package middlewares

import (
	"bytes"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(RequestIDMiddleware(time.Second))
	app.Get("/", func(c *fiber.Ctx) error {
		_, hasDeadline := c.UserContext().Deadline()
		assert.True(t, hasDeadline)
		return c.SendString(c.Locals("reqid").(string))
	})

	t.Run("generates an id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
	})
}

func TestRequestIDMiddleware_LogsRequestLine(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	app := fiber.New()
	app.Use(RequestIDMiddleware(time.Second))
	app.Get("/books", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusTeapot) })

	req := httptest.NewRequest("GET", "/books", nil)
	req.Header.Set("X-Request-ID", "req-42")
	_, err := app.Test(req)
	require.NoError(t, err)

	line := buf.String()
	assert.Contains(t, line, "[REQ] id=req-42 GET /books status=418 dur=")
}

func TestGlobalRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Use(GlobalRateLimiter(1))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	first, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	second, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, first.StatusCode)
	assert.Equal(t, fiber.StatusTooManyRequests, second.StatusCode)
}

func TestRecoveryMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(RecoveryMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
