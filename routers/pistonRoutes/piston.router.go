package pistonRoutes

import (
	pistonController "codecourse/controllers/piston"
	pistonValidator "codecourse/validators/piston"

	"github.com/gofiber/fiber/v2"
)

func SetupPistonRoutes(api fiber.Router) {
	pistonGroup := api.Group("/piston")

	pistonGroup.Post("/execute", pistonValidator.ExecuteCode(), pistonController.ExecuteCode)
}
