package utilityController_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codecourse/config"
	"codecourse/database"
	"codecourse/middleware"
	"codecourse/models"
	utilsRoutes "codecourse/routers/utilsRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()
	config.AppConfig.SMTPHost = ""
	config.AppConfig.EmailSender = ""

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	utilsRoutes.SetupUtilsRoutes(app.Group("/api/v1"))
	return app, db
}

func bearer(t *testing.T, db *gorm.DB, superuser bool) string {
	t.Helper()
	user := &models.User{
		Email:          fmt.Sprintf("user-%t@example.com", superuser),
		HashedPassword: "irrelevant",
		IsActive:       true,
		IsSuperuser:    superuser,
	}
	require.NoError(t, db.Create(user).Error)

	token, err := middleware.GenerateJWT(user.ID)
	require.NoError(t, err)
	return "Bearer " + token
}

func testEmail(t *testing.T, app *fiber.App, path, auth string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestHealthCheck(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/api/v1/utils/health-check", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "true", string(raw))
}

func TestTestEmailRequiresSuperuser(t *testing.T) {
	app, db := setupApp(t)

	resp := testEmail(t, app, "/api/v1/utils/test-email?email_to=ops@example.com", bearer(t, db, false))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestTestEmailMissingAddress(t *testing.T) {
	app, db := setupApp(t)

	resp := testEmail(t, app, "/api/v1/utils/test-email", bearer(t, db, true))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.AppError
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid email!", body.Message)
	assert.Equal(t, "EmailValidationError", body.ErrorType)
}

func TestTestEmailDeliveryUnconfigured(t *testing.T) {
	app, db := setupApp(t)

	resp := testEmail(t, app, "/api/v1/utils/test-email?email_to=ops@example.com", bearer(t, db, true))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body middleware.AppError
	decodeBody(t, resp, &body)
	assert.Equal(t, "Failed to send test email", body.Message)
}
