package aiValidator

import (
	"codecourse/middleware"
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
)

// GenerateHint validator middleware
func GenerateHint() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.HintRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.NewValidationError("Invalid request body!")
		}

		if reqData.DifficultyLevel == "" {
			reqData.DifficultyLevel = models.DifficultyBeginner
		}

		errors := middleware.ValidateStruct(reqData)
		if len(errors) > 0 {
			return middleware.NewValidationFieldErrors(errors)
		}

		c.Locals("validatedHintRequest", reqData)
		return c.Next()
	}
}
