package aiController

import (
	"codecourse/middleware"
	"codecourse/models"
	"codecourse/utils"

	"github.com/gofiber/fiber/v2"
)

// GenerateHint returns a tutoring hint for the submitted exercise
// state. Model failures degrade to a canned fallback hint, they never
// surface as server errors.
func GenerateHint(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedHintRequest").(*models.HintRequest)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	response := utils.GenerateHint(c.UserContext(), reqData)

	return c.JSON(response)
}

// HealthCheck reports whether the hints service is reachable.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy", "service": "hints"})
}
