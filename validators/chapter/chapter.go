package chapterValidator

import (
	"codecourse/middleware"
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
)

func CreateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.ChapterCreate)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.NewValidationError("Invalid request body!")
		}

		errors := middleware.ValidateStruct(reqData)
		if len(errors) > 0 {
			return middleware.NewValidationFieldErrors(errors)
		}

		c.Locals("validatedChapter", reqData)
		return c.Next()
	}
}

func UpdateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.ChapterUpdate)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.NewValidationError("Invalid request body!")
		}

		errors := middleware.ValidateStruct(reqData)
		if len(errors) > 0 {
			return middleware.NewValidationFieldErrors(errors)
		}

		c.Locals("validatedChapter", reqData)
		return c.Next()
	}
}
