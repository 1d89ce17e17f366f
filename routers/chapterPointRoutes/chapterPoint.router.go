package chapterPointRoutes

import (
	chapterPointController "codecourse/controllers/chapterPoint"
	"codecourse/middleware"
	chapterPointValidator "codecourse/validators/chapterPoint"

	"github.com/gofiber/fiber/v2"
)

// SetupChapterPointRoutes mounts the chapter point routes. Reads are
// public, writes require a superuser. Creation takes the owning
// chapter as a chapter_id query parameter.
func SetupChapterPointRoutes(api fiber.Router) {
	pointGroup := api.Group("/chapterPoints")

	pointGroup.Get("/", middleware.PaginationMiddleware, chapterPointController.GetChapterPoints)
	pointGroup.Get("/:chapter_point_id", chapterPointController.GetChapterPoint)

	pointGroup.Post("/", middleware.JWTMiddleware, middleware.SuperuserRequired, chapterPointValidator.CreateChapterPoint(), chapterPointController.CreateChapterPoint)
	pointGroup.Patch("/:chapter_point_id", middleware.JWTMiddleware, middleware.SuperuserRequired, chapterPointValidator.UpdateChapterPoint(), chapterPointController.UpdateChapterPoint)
	pointGroup.Delete("/:chapter_point_id", middleware.JWTMiddleware, middleware.SuperuserRequired, chapterPointController.DeleteChapterPoint)
}
