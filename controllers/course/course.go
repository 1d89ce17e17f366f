package courseController

import (
	"errors"
	"log"

	"codecourse/database"
	"codecourse/middleware"
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetCourses(c *fiber.Ctx) error {
	pagination := middleware.GetPagination(c)
	includeChapters := c.QueryBool("include_chapters", false)

	db := database.Database.Db

	var count *int64
	if pagination.IncludeCount {
		var total int64
		if err := db.Model(&models.Course{}).Count(&total).Error; err != nil {
			log.Printf("Error counting courses: %v", err)
			return middleware.NewDatabaseOperationError("")
		}
		count = &total
	}

	var courses []models.Course
	query := db.Offset(pagination.Skip).Limit(pagination.Limit)
	if includeChapters {
		query = query.Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("chapter_num")
		})
	}
	if err := query.Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	if !includeChapters {
		publicCourses := make([]models.CoursePublic, 0, len(courses))
		for i := range courses {
			publicCourses = append(publicCourses, courses[i].ToPublic())
		}
		return c.JSON(models.CoursesPublic{Data: publicCourses, Count: count})
	}

	withChapters := make([]models.CourseWithChapters, 0, len(courses))
	for i := range courses {
		withChapters = append(withChapters, courses[i].ToPublicWithChapters())
	}
	return c.JSON(models.CoursesWithChaptersPublic{Data: withChapters, Count: count})
}

func GetCourse(c *fiber.Ctx) error {
	courseID, err := middleware.UUIDParam(c, "course_id")
	if err != nil {
		return err
	}
	includeChapters := c.QueryBool("include_chapters", true)

	db := database.Database.Db

	var course models.Course
	query := db
	if includeChapters {
		query = query.Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("chapter_num")
		})
	}
	if err := query.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Course", courseID)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	if !includeChapters {
		return c.JSON(course.ToPublic())
	}
	return c.JSON(course.ToPublicWithChapters())
}

func GetCourseChapters(c *fiber.Ctx) error {
	courseID, err := middleware.UUIDParam(c, "course_id")
	if err != nil {
		return err
	}
	includePoints := c.QueryBool("include_chapter_points", false)

	db := database.Database.Db

	if err := db.First(&models.Course{}, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Course", courseID)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	var chapters []models.Chapter
	query := db.Where("course_id = ?", courseID).Order("chapter_num")
	if includePoints {
		query = query.Preload("Points", func(db *gorm.DB) *gorm.DB {
			return db.Order("chapter_point_num")
		})
	}
	if err := query.Find(&chapters).Error; err != nil {
		log.Printf("Error fetching chapters: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	if !includePoints {
		publicChapters := make([]models.ChapterPublic, 0, len(chapters))
		for i := range chapters {
			publicChapters = append(publicChapters, chapters[i].ToPublic())
		}
		return c.JSON(publicChapters)
	}

	withPoints := make([]models.ChapterWithPoints, 0, len(chapters))
	for i := range chapters {
		withPoints = append(withPoints, chapters[i].ToPublicWithPoints())
	}
	return c.JSON(withPoints)
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*models.CourseCreate)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	db := database.Database.Db

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
	}
	if err := db.Create(&course).Error; err != nil {
		log.Printf("Error saving course to database: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(course.ToPublic())
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID, err := middleware.UUIDParam(c, "course_id")
	if err != nil {
		return err
	}
	reqData, ok := c.Locals("validatedCourse").(*models.CourseUpdate)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Course", courseID)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	updates := make(map[string]interface{})
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if len(updates) > 0 {
		if err := db.Model(&course).Updates(updates).Error; err != nil {
			log.Printf("Error updating course: %v", err)
			return middleware.NewDatabaseOperationError("")
		}
	}

	return c.JSON(course.ToPublic())
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID, err := middleware.UUIDParam(c, "course_id")
	if err != nil {
		return err
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Course", courseID)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var chapterIDs []uuid.UUID
		if err := tx.Model(&models.Chapter{}).Where("course_id = ?", courseID).
			Pluck("id", &chapterIDs).Error; err != nil {
			return err
		}
		if len(chapterIDs) > 0 {
			if err := tx.Where("chapter_id IN ?", chapterIDs).
				Delete(&models.ChapterPoint{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("course_id = ?", courseID).
			Delete(&models.UserCourseFinishedChapter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).
			Delete(&models.UserCourse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).
			Delete(&models.Chapter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(models.Message{Message: "👋 Course deleted successfully"})
}
