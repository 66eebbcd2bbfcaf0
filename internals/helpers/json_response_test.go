package helper

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, h fiber.Handler) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestJsonError(t *testing.T) {
	code, body := call(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "book not found")
	})

	assert.Equal(t, fiber.StatusNotFound, code)
	assert.JSONEq(t, `{"success":false,"message":"book not found","error_code":"NOT_FOUND"}`, body)
}

func TestJsonError_DefaultsTo500(t *testing.T) {
	code, body := call(t, func(c *fiber.Ctx) error {
		return JsonError(c, 0, "")
	})

	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Contains(t, body, `"INTERNAL_ERROR"`)
	assert.Contains(t, body, fiber.ErrInternalServerError.Message)
}

func TestJsonValidationError(t *testing.T) {
	code, body := call(t, func(c *fiber.Ctx) error {
		return JsonValidationError(c, "", map[string][]string{"title": {"required"}})
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.JSONEq(t, `{"success":false,"message":"validation failed","error_code":"VALIDATION_ERROR","errors":{"title":["required"]}}`, body)
}

func TestFromFiberError(t *testing.T) {
	code, _ := call(t, func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusBadRequest, "bad"))
	})
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, body := call(t, func(c *fiber.Ctx) error {
		return FromFiberError(c, errors.New("disk full"))
	})
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Contains(t, body, "disk full")
}

func TestJsonList(t *testing.T) {
	code, body := call(t, func(c *fiber.Ctx) error {
		return JsonList(c, "", []string{"a", "b"}, 2)
	})

	assert.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, `{"success":true,"message":"ok","data":["a","b"],"count":2}`, body)
}
