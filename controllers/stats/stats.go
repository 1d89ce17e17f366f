package statsController

import (
	"log"

	"codecourse/database"
	"codecourse/middleware"
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
)

// GetPublicStats returns headline platform counts. No auth, the numbers
// are public.
func GetPublicStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers int64
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		log.Printf("Error counting users: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	var totalCourses int64
	if err := db.Model(&models.Course{}).Count(&totalCourses).Error; err != nil {
		log.Printf("Error counting courses: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(models.StatsPublic{
		TotalUsers:   totalUsers,
		TotalCourses: totalCourses,
	})
}
