package userCourseValidator

import (
	"codecourse/middleware"
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
)

// UpdateUserCourse validator middleware
func UpdateUserCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.UserCourseUpdate)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.NewValidationError("Invalid request body!")
		}

		errors := middleware.ValidateStruct(reqData)
		if len(errors) > 0 {
			return middleware.NewValidationFieldErrors(errors)
		}

		c.Locals("validatedUserCourse", reqData)
		return c.Next()
	}
}
