package courseValidator

import (
	"codecourse/middleware"
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CourseCreate)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.NewValidationError("Invalid request body!")
		}

		errors := middleware.ValidateStruct(reqData)
		if len(errors) > 0 {
			return middleware.NewValidationFieldErrors(errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CourseUpdate)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.NewValidationError("Invalid request body!")
		}

		errors := middleware.ValidateStruct(reqData)
		if len(errors) > 0 {
			return middleware.NewValidationFieldErrors(errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
