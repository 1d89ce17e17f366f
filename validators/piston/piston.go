package pistonValidator

import (
	"codecourse/middleware"
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
)

// ExecuteCode validator middleware
func ExecuteCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CodeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.NewValidationError("Invalid request body!")
		}

		errors := middleware.ValidateStruct(reqData)
		if len(errors) > 0 {
			return middleware.NewValidationFieldErrors(errors)
		}

		c.Locals("validatedCodeRequest", reqData)
		return c.Next()
	}
}
