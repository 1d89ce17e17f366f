package chapterRoutes

import (
	chapterController "codecourse/controllers/chapter"
	"codecourse/middleware"
	chapterValidator "codecourse/validators/chapter"

	"github.com/gofiber/fiber/v2"
)

// SetupChapterRoutes mounts the chapter routes. Reads are public, the
// completion marker routes need a logged-in user and writes need a
// superuser. The /:chapter_id/completed pair is registered before the
// single-segment param routes so it is matched first.
func SetupChapterRoutes(api fiber.Router) {
	chapterGroup := api.Group("/chapters")

	chapterGroup.Get("/", middleware.PaginationMiddleware, chapterController.GetChapters)
	chapterGroup.Get("/:chapter_id/chapter-points", chapterController.GetChapterPoints)
	chapterGroup.Get("/:chapter_id/completed", middleware.JWTMiddleware, chapterController.IsChapterCompleted)
	chapterGroup.Post("/:chapter_id/completed", middleware.JWTMiddleware, chapterController.CompleteChapter)
	chapterGroup.Get("/:chapter_id", chapterController.GetChapter)

	chapterGroup.Post("/:course_id", middleware.JWTMiddleware, middleware.SuperuserRequired, chapterValidator.CreateChapter(), chapterController.CreateChapter)
	chapterGroup.Patch("/:chapter_id", middleware.JWTMiddleware, middleware.SuperuserRequired, chapterValidator.UpdateChapter(), chapterController.UpdateChapter)
	chapterGroup.Delete("/:chapter_id", middleware.JWTMiddleware, middleware.SuperuserRequired, chapterController.DeleteChapter)
}
