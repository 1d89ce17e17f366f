package chapterController

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

func GetChapters(c *fiber.Ctx) error {
	pagination := middleware.GetPagination(c)
	db := database.Database.Db

	var count *int64
	if pagination.IncludeCount {
		var total int64
		if err := db.Model(&models.Chapter{}).Count(&total).Error; err != nil {
			log.Printf("Error counting chapters: %v", err)
			return middleware.NewDatabaseOperationError("")
		}
		count = &total
	}

	var chapters []models.Chapter
	if err := db.Offset(pagination.Skip).Limit(pagination.Limit).
		Order("chapter_num").Find(&chapters).Error; err != nil {
		log.Printf("Error fetching chapters: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	publicChapters := make([]models.ChapterPublic, 0, len(chapters))
	for i := range chapters {
		publicChapters = append(publicChapters, chapters[i].ToPublic())
	}

	return c.JSON(models.ChaptersPublic{Data: publicChapters, Count: count})
}

func GetChapter(c *fiber.Ctx) error {
	chapterID, err := middleware.UUIDParam(c, "chapter_id")
	if err != nil {
		return err
	}
	includePoints := c.QueryBool("include_chapter_points", true)

	db := database.Database.Db

	var chapter models.Chapter
	query := db
	if includePoints {
		query = query.Preload("Points", func(db *gorm.DB) *gorm.DB {
			return db.Order("chapter_point_num")
		})
	}
	if err := query.First(&chapter, "id = ?", chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Chapter", chapterID)
		}
		log.Printf("Error fetching chapter: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	if !includePoints {
		return c.JSON(chapter.ToPublic())
	}
	return c.JSON(chapter.ToPublicWithPoints())
}

func GetChapterPoints(c *fiber.Ctx) error {
	chapterID, err := middleware.UUIDParam(c, "chapter_id")
	if err != nil {
		return err
	}

	db := database.Database.Db

	if err := db.First(&models.Chapter{}, "id = ?", chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Chapter", chapterID)
		}
		log.Printf("Error fetching chapter: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	var points []models.ChapterPoint
	if err := db.Where("chapter_id = ?", chapterID).
		Order("chapter_point_num").Find(&points).Error; err != nil {
		log.Printf("Error fetching chapter points: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	publicPoints := make([]models.ChapterPointPublic, 0, len(points))
	for i := range points {
		publicPoints = append(publicPoints, points[i].ToPublic())
	}

	return c.JSON(publicPoints)
}

func IsChapterCompleted(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.NewTokenValidationError("")
	}
	chapterID, err := middleware.UUIDParam(c, "chapter_id")
	if err != nil {
		return err
	}

	db := database.Database.Db

	var count int64
	if err := db.Model(&models.UserCourseFinishedChapter{}).
		Where("chapter_id = ? AND user_id = ?", chapterID, user.ID).
		Count(&count).Error; err != nil {
		log.Printf("Error checking finished chapter: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(fiber.Map{"completed": count > 0})
}

func CompleteChapter(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.NewTokenValidationError("")
	}
	chapterID, err := middleware.UUIDParam(c, "chapter_id")
	if err != nil {
		return err
	}
	courseID, err := middleware.UUIDQuery(c, "course_id")
	if err != nil {
		return err
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

	// Check if course exists
	if err := db.First(&models.Course{}, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Course", courseID)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	// The marker belongs to an enrollment, so the user must be enrolled
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, courseID).
		First(&models.UserCourse{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("User course", courseID)
		}
		log.Printf("Error fetching user course: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	// Check if user has already completed the chapter
	var count int64
	if err := db.Model(&models.UserCourseFinishedChapter{}).
		Where("chapter_id = ? AND user_id = ?", chapterID, user.ID).
		Count(&count).Error; err != nil {
		log.Printf("Error checking finished chapter: %v", err)
		return middleware.NewDatabaseOperationError("")
	}
	if count > 0 {
		return middleware.NewItemAlreadyExistsError(
			fmt.Sprintf("Chapter %s by user %s", chapterID, user.ID))
	}

	marker := models.UserCourseFinishedChapter{
		UserID:    user.ID,
		CourseID:  courseID,
		ChapterID: chapterID,
	}
	if err := db.Create(&marker).Error; err != nil {
		log.Printf("Error creating finished chapter: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(models.Message{
		Message: fmt.Sprintf("Chapter with id '%s' is set to completed!", chapterID),
	})
}

func CreateChapter(c *fiber.Ctx) error {
	courseID, err := middleware.UUIDParam(c, "course_id")
	if err != nil {
		return err
	}
	reqData, ok := c.Locals("validatedChapter").(*models.ChapterCreate)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	db := database.Database.Db

	if err := db.First(&models.Course{}, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Course", courseID)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	// The number is assigned inside the transaction so two concurrent
	// creates cannot land on the same position.
	chapter := models.Chapter{
		CourseID:    courseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Exercise:    reqData.Exercise,
		TestCode:    reqData.TestCode,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Chapter{}).Where("course_id = ?", courseID).
			Count(&count).Error; err != nil {
			return err
		}
		chapter.ChapterNum = int(count) + 1
		return tx.Create(&chapter).Error
	})
	if err != nil {
		log.Printf("Error saving chapter to database: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(chapter.ToPublic())
}

func UpdateChapter(c *fiber.Ctx) error {
	chapterID, err := middleware.UUIDParam(c, "chapter_id")
	if err != nil {
		return err
	}
	reqData, ok := c.Locals("validatedChapter").(*models.ChapterUpdate)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.First(&chapter, "id = ?", chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Chapter", chapterID)
		}
		log.Printf("Error fetching chapter: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	updates := make(map[string]interface{})
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Exercise != nil {
		updates["exercise"] = *reqData.Exercise
	}
	if reqData.TestCode != nil {
		updates["test_code"] = *reqData.TestCode
	}
	if len(updates) > 0 {
		if err := db.Model(&chapter).Updates(updates).Error; err != nil {
			log.Printf("Error updating chapter: %v", err)
			return middleware.NewDatabaseOperationError("")
		}
	}

	return c.JSON(chapter.ToPublic())
}

// DeleteChapter removes the chapter and closes the numbering gap it
// leaves, so the surviving chapters of the course stay densely numbered
// from one.
func DeleteChapter(c *fiber.Ctx) error {
	chapterID, err := middleware.UUIDParam(c, "chapter_id")
	if err != nil {
		return err
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.First(&chapter, "id = ?", chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Chapter", chapterID)
		}
		log.Printf("Error fetching chapter: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chapter_id = ?", chapterID).
			Delete(&models.ChapterPoint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id = ?", chapterID).
			Delete(&models.UserCourseFinishedChapter{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&chapter).Error; err != nil {
			return err
		}
		return tx.Model(&models.Chapter{}).
			Where("course_id = ? AND chapter_num > ?", chapter.CourseID, chapter.ChapterNum).
			Update("chapter_num", gorm.Expr("chapter_num - 1")).Error
	})
	if err != nil {
		log.Printf("Error deleting chapter: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(models.Message{Message: "👋 Chapter deleted successfully"})
}
