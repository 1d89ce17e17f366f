package main

import (
	"context"

	"codecourse/config"
	"codecourse/database"
	"codecourse/middleware"
	aiRoutes "codecourse/routers/aiRoutes"
	authRoutes "codecourse/routers/authRoutes"
	chapterPointRoutes "codecourse/routers/chapterPointRoutes"
	chapterRoutes "codecourse/routers/chapterRoutes"
	courseRoutes "codecourse/routers/courseRoutes"
	pistonRoutes "codecourse/routers/pistonRoutes"
	privateRoutes "codecourse/routers/privateRoutes"
	statsRoutes "codecourse/routers/statsRoutes"
	userRoutes "codecourse/routers/userRoutes"
	utilsRoutes "codecourse/routers/utilsRoutes"
	"codecourse/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	utils.InitPistonClient()
	utils.InitHintAgent(context.Background())

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSOrigins,
		AllowMethods:     "GET,POST,PATCH,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	api := app.Group("/api/v1")

	authRoutes.SetupAuthRoutes(api)
	userRoutes.SetupUserRoutes(api)
	courseRoutes.SetupCourseRoutes(api)
	chapterRoutes.SetupChapterRoutes(api)
	chapterPointRoutes.SetupChapterPointRoutes(api)
	utilsRoutes.SetupUtilsRoutes(api)
	pistonRoutes.SetupPistonRoutes(api)
	aiRoutes.SetupAiRoutes(api)
	statsRoutes.SetupStatsRoutes(api)

	// Test-support endpoints, never mounted outside local development.
	if config.AppConfig.Environment == "local" {
		privateRoutes.SetupPrivateRoutes(api)
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
