package privateController_test

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
	privateRoutes "codecourse/routers/privateRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	privateRoutes.SetupPrivateRoutes(app.Group("/api/v1"))
	return app, db
}

func createUser(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/private/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
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

func TestPrivateCreateUser(t *testing.T) {
	app, db := setupApp(t)

	resp := createUser(t, app, `{
		"email": "e2e@example.com",
		"password": "changethis1",
		"user_name": "E2E Fixture",
		"is_verified": true
	}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var created models.UserPublic
	decodeBody(t, resp, &created)
	assert.Equal(t, "e2e@example.com", created.Email)
	require.NotNil(t, created.UserName)
	assert.Equal(t, "E2E Fixture", *created.UserName)
	assert.True(t, created.IsActive)
	assert.False(t, created.IsSuperuser)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("changethis1")))
}

func TestPrivateCreateUserRequiresUserName(t *testing.T) {
	app, _ := setupApp(t)

	resp := createUser(t, app, `{"email":"e2e@example.com","password":"changethis1"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.AppError
	decodeBody(t, resp, &body)
	assert.Equal(t, "user_name: This field is required!", body.Message)
}
