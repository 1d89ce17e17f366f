package authController_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"codecourse/config"
	"codecourse/database"
	"codecourse/middleware"
	"codecourse/models"
	authRoutes "codecourse/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "changethis1"

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	authRoutes.SetupAuthRoutes(app.Group("/api/v1"))
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, email string, active bool) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Email:          email,
		HashedPassword: string(hashed),
		IsActive:       active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func login(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req := httptest.NewRequest("POST", "/api/v1/login/access-token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
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

func accessTokenCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.AccessTokenCookie {
			return cookie
		}
	}
	return nil
}

func TestLoginReturnsTokenAndCookie(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "login@example.com", true)

	resp := login(t, app, "login@example.com", testPassword)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := accessTokenCookie(resp)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var token models.Token
	decodeBody(t, resp, &token)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, cookie.Value, token.AccessToken)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "wrongpass@example.com", true)

	resp := login(t, app, "wrongpass@example.com", "not-the-password")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body middleware.AppError
	decodeBody(t, resp, &body)
	assert.Equal(t, "Incorrect email or password", body.Message)
	assert.Equal(t, "InvalidCredentialsError", body.ErrorType)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	app, _ := setupApp(t)

	resp := login(t, app, "nobody@example.com", testPassword)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body middleware.AppError
	decodeBody(t, resp, &body)
	assert.Equal(t, "Incorrect email or password", body.Message)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "sleepy@example.com", false)

	resp := login(t, app, "sleepy@example.com", testPassword)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.AppError
	decodeBody(t, resp, &body)
	assert.Equal(t, "User account is inactive", body.Message)
	assert.Equal(t, "InactiveUserError", body.ErrorType)
}

func TestLoginRateLimited(t *testing.T) {
	app, _ := setupApp(t)

	var last *http.Response
	for i := 0; i < 6; i++ {
		if last != nil {
			last.Body.Close()
		}
		last = login(t, app, "nobody@example.com", "wrong")
	}

	assert.Equal(t, fiber.StatusTooManyRequests, last.StatusCode)
	assert.NotEmpty(t, last.Header.Get(fiber.HeaderRetryAfter))
	last.Body.Close()
}

func TestTestTokenReturnsCurrentUser(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db, "token-check@example.com", true)

	token, err := middleware.GenerateJWT(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/login/test-token", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var public models.UserPublic
	decodeBody(t, resp, &public)
	assert.Equal(t, user.ID, public.ID)
	assert.Equal(t, "token-check@example.com", public.Email)
}

func TestLogoutClearsCookie(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/logout", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := accessTokenCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.MaxAge < 0 || !cookie.Expires.IsZero())

	var body models.Message
	decodeBody(t, resp, &body)
	assert.Equal(t, "Successfully logged out", body.Message)
}

func TestRecoverPasswordUnknownEmail(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/password-recovery/ghost@example.com", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body middleware.AppError
	decodeBody(t, resp, &body)
	assert.Equal(t, "User not found.", body.Message)
}

func TestRecoverPasswordKnownEmail(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "forgetful@example.com", true)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/password-recovery/forgetful@example.com", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.Message
	decodeBody(t, resp, &body)
	assert.Equal(t, "Password recovery email sent", body.Message)
}

func TestResetPasswordWithValidToken(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "resetme@example.com", true)

	token, err := middleware.GeneratePasswordResetToken("resetme@example.com")
	require.NoError(t, err)

	payload := fmt.Sprintf(`{"token":%q,"new_password":"brandnewpass1"}`, token)
	req := httptest.NewRequest("POST", "/api/v1/reset-password", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.Message
	decodeBody(t, resp, &body)
	assert.Equal(t, "Password updated successfully", body.Message)

	oldLogin := login(t, app, "resetme@example.com", testPassword)
	assert.Equal(t, fiber.StatusUnauthorized, oldLogin.StatusCode)
	oldLogin.Body.Close()

	newLogin := login(t, app, "resetme@example.com", "brandnewpass1")
	assert.Equal(t, fiber.StatusOK, newLogin.StatusCode)
	newLogin.Body.Close()
}

func TestResetPasswordRejectsBadToken(t *testing.T) {
	app, _ := setupApp(t)

	payload := `{"token":"bogus","new_password":"brandnewpass1"}`
	req := httptest.NewRequest("POST", "/api/v1/reset-password", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body middleware.AppError
	decodeBody(t, resp, &body)
	assert.Equal(t, "Access denied: Invalid password reset token", body.Message)
	assert.Equal(t, "TokenValidationError", body.ErrorType)
}
