package privateRoutes

import (
	privateController "codecourse/controllers/private"
	privateValidator "codecourse/validators/private"

	"github.com/gofiber/fiber/v2"
)

// SetupPrivateRoutes mounts the test-support endpoints. Only called
// when the app runs in the local environment.
func SetupPrivateRoutes(api fiber.Router) {
	privateGroup := api.Group("/private")

	privateGroup.Post("/users", privateValidator.CreateUser(), privateController.CreateUser)
}
