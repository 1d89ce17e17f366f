package userRoutes

import (
	userController "codecourse/controllers/user"
	"codecourse/middleware"
	userValidator "codecourse/validators/user"
	userCourseValidator "codecourse/validators/userCourse"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes mounts account management, enrollment and the
// superuser-only user administration endpoints. The /me routes are
// registered before /:user_id so they are matched first.
func SetupUserRoutes(api fiber.Router) {
	userGroup := api.Group("/users")

	userGroup.Post("/signup", userValidator.Signup(), userController.Signup)

	userGroup.Get("/me", middleware.JWTMiddleware, userController.ReadUserMe)
	userGroup.Patch("/me", middleware.JWTMiddleware, userValidator.UpdateMe(), userController.UpdateUserMe)
	userGroup.Patch("/me/password", middleware.JWTMiddleware, userValidator.UpdatePassword(), userController.UpdatePasswordMe)
	userGroup.Delete("/me", middleware.JWTMiddleware, userController.DeleteUserMe)

	userGroup.Get("/me/courses", middleware.JWTMiddleware, userController.GetMyCourses)
	userGroup.Get("/me/courses/:course_id", middleware.JWTMiddleware, userController.GetMyCourse)
	userGroup.Post("/me/courses/:course_id", middleware.JWTMiddleware, userController.EnrollCourse)
	userGroup.Patch("/me/courses/:course_id", middleware.JWTMiddleware, userCourseValidator.UpdateUserCourse(), userController.UpdateMyCourse)
	userGroup.Delete("/me/courses/:course_id", middleware.JWTMiddleware, userController.UnenrollCourse)

	userGroup.Get("/", middleware.JWTMiddleware, middleware.SuperuserRequired, middleware.PaginationMiddleware, userController.GetUsers)
	userGroup.Post("/", middleware.JWTMiddleware, middleware.SuperuserRequired, userValidator.CreateUser(), userController.CreateUser)
	userGroup.Get("/:user_id", middleware.JWTMiddleware, middleware.SuperuserRequired, userController.GetUserByID)
	userGroup.Patch("/:user_id", middleware.JWTMiddleware, middleware.SuperuserRequired, userValidator.UpdateUser(), userController.UpdateUser)
	userGroup.Delete("/:user_id", middleware.JWTMiddleware, middleware.SuperuserRequired, userController.DeleteUser)
}
