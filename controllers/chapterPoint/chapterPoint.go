package chapterPointController

import (
	"errors"
	"fmt"
	"log"

	"codecourse/database"
	"codecourse/middleware"
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetChapterPoints(c *fiber.Ctx) error {
	pagination := middleware.GetPagination(c)
	db := database.Database.Db

	var count *int64
	if pagination.IncludeCount {
		var total int64
		if err := db.Model(&models.ChapterPoint{}).Count(&total).Error; err != nil {
			log.Printf("Error counting chapter points: %v", err)
			return middleware.NewDatabaseOperationError("")
		}
		count = &total
	}

	var points []models.ChapterPoint
	if err := db.Offset(pagination.Skip).Limit(pagination.Limit).
		Find(&points).Error; err != nil {
		log.Printf("Error fetching chapter points: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	publicPoints := make([]models.ChapterPointPublic, 0, len(points))
	for i := range points {
		publicPoints = append(publicPoints, points[i].ToPublic())
	}

	return c.JSON(models.ChapterPointsPublic{Data: publicPoints, Count: count})
}

func GetChapterPoint(c *fiber.Ctx) error {
	pointID, err := middleware.UUIDParam(c, "chapter_point_id")
	if err != nil {
		return err
	}

	db := database.Database.Db

	var point models.ChapterPoint
	if err := db.First(&point, "id = ?", pointID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Chapter Point", pointID)
		}
		log.Printf("Error fetching chapter point: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(point.ToPublic())
}

func CreateChapterPoint(c *fiber.Ctx) error {
	chapterID, err := middleware.UUIDQuery(c, "chapter_id")
	if err != nil {
		return err
	}
	reqData, ok := c.Locals("validatedChapterPoint").(*models.ChapterPointCreate)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	db := database.Database.Db

	// Check if chapter exists
	if err := db.First(&models.Chapter{}, "id = ?", chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Chapter", chapterID)
		}
		log.Printf("Error fetching chapter: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	// Point numbers are caller assigned, so the position must be free
	var count int64
	if err := db.Model(&models.ChapterPoint{}).
		Where("chapter_id = ? AND chapter_point_num = ?", chapterID, reqData.ChapterPointNum).
		Count(&count).Error; err != nil {
		log.Printf("Error checking chapter point number: %v", err)
		return middleware.NewDatabaseOperationError("")
	}
	if count > 0 {
		return middleware.NewItemAlreadyExistsError(
			fmt.Sprintf("Chapter Point %d", reqData.ChapterPointNum))
	}

	point := models.ChapterPoint{
		ChapterID:       chapterID,
		ChapterPointNum: reqData.ChapterPointNum,
		Text:            reqData.Text,
		CodeBlock:       reqData.CodeBlock,
		Image:           reqData.Image,
		Video:           reqData.Video,
	}
	if err := db.Create(&point).Error; err != nil {
		log.Printf("Error saving chapter point to database: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(point.ToPublic())
}

func UpdateChapterPoint(c *fiber.Ctx) error {
	pointID, err := middleware.UUIDParam(c, "chapter_point_id")
	if err != nil {
		return err
	}
	reqData, ok := c.Locals("validatedChapterPoint").(*models.ChapterPointUpdate)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	db := database.Database.Db

	var point models.ChapterPoint
	if err := db.First(&point, "id = ?", pointID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Chapter Point", pointID)
		}
		log.Printf("Error fetching chapter point: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	updates := make(map[string]interface{})
	if reqData.ChapterPointNum != nil {
		updates["chapter_point_num"] = *reqData.ChapterPointNum
	}

	// A supplied content field replaces the row's content wholesale,
	// so the row keeps exactly one content field afterwards. The
	// validator already rejects payloads carrying more than one.
	if reqData.Text != nil || reqData.CodeBlock != nil || reqData.Image != nil || reqData.Video != nil {
		updates["text"] = reqData.Text
		updates["code_block"] = reqData.CodeBlock
		updates["image"] = reqData.Image
		updates["video"] = reqData.Video
	}

	if len(updates) > 0 {
		if err := db.Model(&point).Updates(updates).Error; err != nil {
			log.Printf("Error updating chapter point: %v", err)
			return middleware.NewDatabaseOperationError("")
		}
	}

	return c.JSON(point.ToPublic())
}

func DeleteChapterPoint(c *fiber.Ctx) error {
	pointID, err := middleware.UUIDParam(c, "chapter_point_id")
	if err != nil {
		return err
	}

	db := database.Database.Db

	var point models.ChapterPoint
	if err := db.First(&point, "id = ?", pointID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Chapter Point", pointID)
		}
		log.Printf("Error fetching chapter point: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	if err := db.Delete(&point).Error; err != nil {
		log.Printf("Error deleting chapter point: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(models.Message{Message: "👋 Chapter Point deleted successfully"})
}
