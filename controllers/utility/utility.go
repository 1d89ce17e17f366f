package utilityController

import (
	"log"

	"codecourse/middleware"
	"codecourse/models"
	"codecourse/utils"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(true)
}

// TestEmail sends a delivery smoke test to the address in the email_to
// query parameter.
func TestEmail(c *fiber.Ctx) error {
	email := c.Query("email_to")
	if email == "" {
		return middleware.NewEmailValidationError("Invalid email!")
	}

	if err := utils.SendTestEmail(email); err != nil {
		log.Printf("Error sending test email: %v", err)
		return middleware.NewInternalServerError("Failed to send test email")
	}

	return c.Status(fiber.StatusCreated).JSON(models.Message{Message: "Test email sent"})
}
