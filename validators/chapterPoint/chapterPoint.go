package chapterPointValidator

import (
	"codecourse/middleware"
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
)

// countContentFields reports how many content fields the payload sets.
func countContentFields(fields ...*string) int {
	count := 0
	for _, field := range fields {
		if field != nil {
			count++
		}
	}
	return count
}

func CreateChapterPoint() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.ChapterPointCreate)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.NewValidationError("Invalid request body!")
		}

		errors := middleware.ValidateStruct(reqData)

		// A point carries exactly one kind of content
		fields := countContentFields(reqData.Text, reqData.CodeBlock, reqData.Image, reqData.Video)
		if fields != 1 {
			errors["content"] = "Exactly one of text, code_block, image or video must be set!"
		}

		if len(errors) > 0 {
			return middleware.NewValidationFieldErrors(errors)
		}

		c.Locals("validatedChapterPoint", reqData)
		return c.Next()
	}
}

func UpdateChapterPoint() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.ChapterPointUpdate)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.NewValidationError("Invalid request body!")
		}

		errors := middleware.ValidateStruct(reqData)

		// Supplying a content field replaces the whole content of the
		// point, so at most one may be set per request.
		fields := countContentFields(reqData.Text, reqData.CodeBlock, reqData.Image, reqData.Video)
		if fields > 1 {
			errors["content"] = "Only one of text, code_block, image or video may be set!"
		}

		if len(errors) > 0 {
			return middleware.NewValidationFieldErrors(errors)
		}

		c.Locals("validatedChapterPoint", reqData)
		return c.Next()
	}
}
