package utilsRoutes

import (
	utilityController "codecourse/controllers/utility"
	"codecourse/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUtilsRoutes(api fiber.Router) {
	utilsGroup := api.Group("/utils")

	utilsGroup.Get("/health-check", utilityController.HealthCheck)
	utilsGroup.Post("/test-email", middleware.JWTMiddleware, middleware.SuperuserRequired, utilityController.TestEmail)
}
