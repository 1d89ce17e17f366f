package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemNotFoundError(t *testing.T) {
	id := uuid.MustParse("9f1c7f2e-6b2d-4f0b-9d3a-0a1b2c3d4e5f")
	err := NewItemNotFoundError("user course", id)

	assert.Equal(t, "User course with id 9f1c7f2e-6b2d-4f0b-9d3a-0a1b2c3d4e5f not found", err.Message)
	assert.Equal(t, fiber.StatusNotFound, err.StatusCode)
	assert.Equal(t, "ItemNotFoundError", err.ErrorType)
}

func TestItemAlreadyExistsError(t *testing.T) {
	err := NewItemAlreadyExistsError("Chapter Point 3")

	assert.Equal(t, "'Chapter point 3' already exists in the system", err.Message)
	assert.Equal(t, fiber.StatusConflict, err.StatusCode)
	assert.Equal(t, "ItemAlreadyExistsError", err.ErrorType)
}

func TestTokenValidationErrorDefaults(t *testing.T) {
	err := NewTokenValidationError("")

	assert.Equal(t, "Access denied: Invalid or expired token", err.Message)
	assert.Equal(t, fiber.StatusForbidden, err.StatusCode)
	assert.Equal(t, "TokenValidationError", err.ErrorType)
}

func TestInvalidCredentialsErrorDefaults(t *testing.T) {
	err := NewInvalidCredentialsError("")

	assert.Equal(t, "Invalid credentials", err.Message)
	assert.Equal(t, fiber.StatusUnauthorized, err.StatusCode)
	assert.Equal(t, "InvalidCredentialsError", err.ErrorType)
}

func TestValidationFieldErrorsAreSorted(t *testing.T) {
	err := NewValidationFieldErrors(map[string]string{
		"title": "This field is required!",
		"email": "Invalid email!",
	})

	assert.Equal(t, "email: Invalid email!; title: This field is required!", err.Message)
	assert.Equal(t, fiber.StatusBadRequest, err.StatusCode)
}

func TestPistonAPIErrorMapsClientErrors(t *testing.T) {
	err := NewPistonAPIError(400, []byte(`{"message":"runtime is unknown"}`))

	assert.Equal(t, fiber.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "runtime is unknown", err.Message)
	assert.Equal(t, "PistonAPIError", err.ErrorType)
}

func TestPistonAPIErrorMapsEngineErrors(t *testing.T) {
	err := NewPistonAPIError(503, []byte("service unavailable"))

	assert.Equal(t, fiber.StatusBadGateway, err.StatusCode)
	assert.Equal(t, "service unavailable", err.Message)
}

func TestErrorHandlerRendersAppError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return NewRateLimitError("", 42)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "42", resp.Header.Get(fiber.HeaderRetryAfter))

	var body AppError
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Too many requests", body.Message)
	assert.Equal(t, fiber.StatusTooManyRequests, body.StatusCode)
	assert.Equal(t, "RateLimitError", body.ErrorType)
}

func TestErrorHandlerRendersFiberError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/only-get", func(c *fiber.Ctx) error { return c.JSON(true) })

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body AppError
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, fiber.StatusNotFound, body.StatusCode)
	assert.Equal(t, "NotFoundError", body.ErrorType)
}
