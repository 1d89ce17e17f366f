package statsRoutes

import (
	statsController "codecourse/controllers/stats"

	"github.com/gofiber/fiber/v2"
)

func SetupStatsRoutes(api fiber.Router) {
	statsGroup := api.Group("/stats")

	statsGroup.Get("/", statsController.GetPublicStats)
}
