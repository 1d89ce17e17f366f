package privateController

import (
	"log"

	"codecourse/config"
	"codecourse/database"
	"codecourse/middleware"
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser skips the public signup checks. The route is only mounted
// in the local environment for end to end test setups.
func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*models.PrivateUserCreate)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.NewInternalServerError("Failed to process your request")
	}

	newUser := models.User{
		Email:          reqData.Email,
		UserName:       &reqData.UserName,
		HashedPassword: string(hashedPassword),
		IsActive:       true,
	}

	db := database.Database.Db
	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(newUser.ToPublic())
}
