package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"codecourse/config"
	"codecourse/database"
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessTokenCookie is the cookie the login flow sets. The middleware
// reads it before falling back to the Authorization header.
const AccessTokenCookie = "access_token"

// GenerateJWT generates a signed access token for the user
func GenerateJWT(userID uuid.UUID) (string, error) {
	ttl := time.Duration(config.AppConfig.AccessTokenExpireMinutes) * time.Minute
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// parseSubject validates a signed token and returns its subject claim.
func parseSubject(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Check if the token method is valid
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token payload")
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", fmt.Errorf("invalid token payload")
	}
	return subject, nil
}

// JWTMiddleware resolves the current user from the access token and
// stores the loaded row in the request context. It fails closed: a
// missing or bad token never reaches the handler.
func JWTMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies(AccessTokenCookie)
	if tokenString == "" {
		// The token should be prefixed with "Bearer "
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[len("Bearer "):]
		}
	}
	if tokenString == "" {
		return NewTokenValidationError("")
	}

	subject, err := parseSubject(tokenString)
	if err != nil {
		return NewTokenValidationError("")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return NewTokenValidationError("")
	}

	var user models.User
	if err := database.Database.Db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("User")
		}
		return NewDatabaseOperationError("")
	}
	if !user.IsActive {
		return NewInactiveUserError()
	}

	c.Locals("currentUser", &user)
	return c.Next()
}

// CurrentUser returns the user loaded by JWTMiddleware, nil outside of
// authenticated routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("currentUser").(*models.User)
	return user
}

// GeneratePasswordResetToken issues a short lived token bound to the
// account email.
func GeneratePasswordResetToken(email string) (string, error) {
	ttl := time.Duration(config.AppConfig.ResetTokenExpireHours) * time.Hour
	claims := jwt.MapClaims{
		"sub": email,
		"nbf": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// VerifyPasswordResetToken returns the email a reset token was issued
// for, or an error when the token is invalid or expired.
func VerifyPasswordResetToken(tokenString string) (string, error) {
	return parseSubject(tokenString)
}
