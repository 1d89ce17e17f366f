package authRoutes

import (
	"time"

	authController "codecourse/controllers/auth"
	"codecourse/middleware"
	authValidator "codecourse/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes mounts the login and password recovery endpoints.
// They sit at the API root rather than under their own prefix.
func SetupAuthRoutes(api fiber.Router) {
	api.Post("/login/access-token", middleware.RateLimiter(5, time.Minute), authValidator.Login(), authController.Login)
	api.Post("/login/test-token", middleware.RateLimiter(5, time.Minute), middleware.JWTMiddleware, authController.TestToken)
	api.Post("/logout", middleware.RateLimiter(10, time.Minute), authController.Logout)
	api.Post("/password-recovery/:email", middleware.RateLimiter(3, 5*time.Minute), authValidator.RecoverPassword(), authController.RecoverPassword)
	api.Post("/reset-password", middleware.RateLimiter(3, 5*time.Minute), authValidator.ResetPassword(), authController.ResetPassword)
}
