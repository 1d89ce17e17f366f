package courseRoutes

import (
	courseController "codecourse/controllers/course"
	"codecourse/middleware"
	courseValidator "codecourse/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes mounts the course catalog routes. Reads are public,
// writes require a superuser.
func SetupCourseRoutes(api fiber.Router) {
	courseGroup := api.Group("/courses")

	courseGroup.Get("/", middleware.PaginationMiddleware, courseController.GetCourses)
	courseGroup.Get("/:course_id", courseController.GetCourse)
	courseGroup.Get("/:course_id/chapters", courseController.GetCourseChapters)

	courseGroup.Post("/", middleware.JWTMiddleware, middleware.SuperuserRequired, courseValidator.CreateCourse(), courseController.CreateCourse)
	courseGroup.Patch("/:course_id", middleware.JWTMiddleware, middleware.SuperuserRequired, courseValidator.UpdateCourse(), courseController.UpdateCourse)
	courseGroup.Delete("/:course_id", middleware.JWTMiddleware, middleware.SuperuserRequired, courseController.DeleteCourse)
}
