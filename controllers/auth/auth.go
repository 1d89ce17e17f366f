package authController

import (
	"errors"
	"log"
	"time"

	"codecourse/config"
	"codecourse/database"
	"codecourse/middleware"
	"codecourse/models"
	"codecourse/utils"
	authValidator "codecourse/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginForm)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	db := database.Database.Db

	// The username form field carries the account email
	var user models.User
	if err := db.Where("email = ?", reqData.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewInvalidCredentialsError("Incorrect email or password")
		}
		log.Printf("Error fetching user by email: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(reqData.Password)) != nil {
		return middleware.NewInvalidCredentialsError("Incorrect email or password")
	}

	if !user.IsActive {
		return middleware.NewInactiveUserError()
	}

	token, err := middleware.GenerateJWT(user.ID)
	if err != nil {
		log.Printf("Error generating access token: %v", err)
		return middleware.NewInternalServerError("Failed to generate access token")
	}

	maxAge := config.AppConfig.AccessTokenExpireMinutes * 60
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		MaxAge:   maxAge,
		Expires:  time.Now().Add(time.Duration(maxAge) * time.Second),
		HTTPOnly: true,
		Secure:   false,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(models.Token{AccessToken: token, TokenType: "bearer"})
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   false,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(models.Message{Message: "Successfully logged out"})
}

// TestToken echoes the authenticated user, so clients can probe whether
// a stored token is still good.
func TestToken(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.NewTokenValidationError("")
	}

	return c.JSON(user.ToPublic())
}

func RecoverPassword(c *fiber.Ctx) error {
	email, ok := c.Locals("recoveryEmail").(string)
	if !ok {
		return middleware.NewEmailValidationError("Invalid email!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewNotFoundError("User")
		}
		log.Printf("Error fetching user by email: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	resetToken, err := middleware.GeneratePasswordResetToken(user.Email)
	if err != nil {
		log.Printf("Error generating password reset token: %v", err)
		return middleware.NewInternalServerError("Failed to generate reset token")
	}

	utils.SendPasswordResetEmail(user.Email, resetToken)

	return c.JSON(models.Message{Message: "Password recovery email sent"})
}

func ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNewPassword").(*models.NewPassword)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	email, err := middleware.VerifyPasswordResetToken(reqData.Token)
	if err != nil {
		return middleware.NewTokenValidationError("Invalid password reset token")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewNotFoundError("User")
		}
		log.Printf("Error fetching user by email: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	if !user.IsActive {
		return middleware.NewInactiveUserError()
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.NewInternalServerError("Failed to process your request")
	}

	if err := db.Model(&user).Update("hashed_password", string(hashedPassword)).Error; err != nil {
		log.Printf("Error updating password: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(models.Message{Message: "Password updated successfully"})
}
