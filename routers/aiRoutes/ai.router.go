package aiRoutes

import (
	aiController "codecourse/controllers/ai"
	"codecourse/middleware"
	aiValidator "codecourse/validators/ai"

	"github.com/gofiber/fiber/v2"
)

func SetupAiRoutes(api fiber.Router) {
	aiGroup := api.Group("/ai")

	aiGroup.Post("/generate", middleware.DailyRateLimiter(50), aiValidator.GenerateHint(), aiController.GenerateHint)
	aiGroup.Get("/health", aiController.HealthCheck)
}
