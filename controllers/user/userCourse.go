package userController

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

func GetMyCourses(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.NewTokenValidationError("")
	}

	db := database.Database.Db

	var userCourses []models.UserCourse
	if err := db.Where("user_id = ?", user.ID).Find(&userCourses).Error; err != nil {
		log.Printf("Error fetching user courses: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	publicCourses := make([]models.UserCoursePublic, 0, len(userCourses))
	for i := range userCourses {
		publicCourses = append(publicCourses, userCourses[i].ToPublic())
	}

	return c.JSON(publicCourses)
}

func GetMyCourse(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.NewTokenValidationError("")
	}
	courseID, err := middleware.UUIDParam(c, "course_id")
	if err != nil {
		return err
	}

	db := database.Database.Db

	var userCourse models.UserCourse
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, courseID).First(&userCourse).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("User course", courseID)
		}
		log.Printf("Error fetching user course: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	var markers []models.UserCourseFinishedChapter
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, courseID).Find(&markers).Error; err != nil {
		log.Printf("Error fetching finished chapters: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	finishedIDs := make([]uuid.UUID, 0, len(markers))
	for i := range markers {
		finishedIDs = append(finishedIDs, markers[i].ChapterID)
	}

	return c.JSON(models.UserCourseDetail{
		UserCoursePublic:   userCourse.ToPublic(),
		FinishedChapterIDs: finishedIDs,
	})
}

func EnrollCourse(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.NewTokenValidationError("")
	}
	courseID, err := middleware.UUIDParam(c, "course_id")
	if err != nil {
		return err
	}

	db := database.Database.Db

	// Check if course exists
	if err := db.First(&models.Course{}, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("Course", courseID)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	// One enrollment per (user, course) pair
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, courseID).
		First(&models.UserCourse{}).Error; err == nil {
		return middleware.NewItemAlreadyExistsError("User course")
	}

	userCourse := models.UserCourse{
		UserID:         user.ID,
		CourseID:       courseID,
		Status:         models.EnrollmentStatusEnrolled,
		CurrentChapter: 1,
		Progress:       0,
	}
	if err := db.Create(&userCourse).Error; err != nil {
		log.Printf("Error creating enrollment: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(userCourse.ToPublic())
}

// UpdateMyCourse applies a partial update to the enrollment. When
// finished_chapters is present it is treated as the desired complete
// set: missing markers are inserted, markers absent from the incoming
// set are removed. Sending the same set twice changes nothing.
func UpdateMyCourse(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.NewTokenValidationError("")
	}
	courseID, err := middleware.UUIDParam(c, "course_id")
	if err != nil {
		return err
	}
	reqData, ok := c.Locals("validatedUserCourse").(*models.UserCourseUpdate)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	db := database.Database.Db

	var userCourse models.UserCourse
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, courseID).First(&userCourse).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("User course", courseID)
		}
		log.Printf("Error fetching user course: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if reqData.FinishedChapters != nil {
			incomingSet := make(map[uuid.UUID]struct{}, len(*reqData.FinishedChapters))
			for _, chapterID := range *reqData.FinishedChapters {
				incomingSet[chapterID] = struct{}{}
			}

			incomingIDs := make([]uuid.UUID, 0, len(incomingSet))
			for chapterID := range incomingSet {
				incomingIDs = append(incomingIDs, chapterID)
			}

			// Every finished chapter must belong to this course
			if len(incomingIDs) > 0 {
				var valid int64
				if err := tx.Model(&models.Chapter{}).
					Where("course_id = ? AND id IN ?", courseID, incomingIDs).
					Count(&valid).Error; err != nil {
					return err
				}
				if valid != int64(len(incomingIDs)) {
					return middleware.NewValidationError("finished_chapters contains chapters that do not belong to this course")
				}
			}

			var existingRecords []models.UserCourseFinishedChapter
			if err := tx.Where("user_id = ? AND course_id = ?", user.ID, courseID).
				Find(&existingRecords).Error; err != nil {
				return err
			}
			existingSet := make(map[uuid.UUID]struct{}, len(existingRecords))
			for i := range existingRecords {
				existingSet[existingRecords[i].ChapterID] = struct{}{}
			}

			// Markers to add
			for chapterID := range incomingSet {
				if _, found := existingSet[chapterID]; found {
					continue
				}
				marker := models.UserCourseFinishedChapter{
					UserID:    user.ID,
					CourseID:  courseID,
					ChapterID: chapterID,
				}
				if err := tx.Create(&marker).Error; err != nil {
					return err
				}
			}

			// Markers to remove
			for i := range existingRecords {
				if _, found := incomingSet[existingRecords[i].ChapterID]; found {
					continue
				}
				if err := tx.Delete(&existingRecords[i]).Error; err != nil {
					return err
				}
			}
		}

		updates := make(map[string]interface{})
		if reqData.Status != nil {
			updates["status"] = *reqData.Status
		}
		if reqData.CurrentChapter != nil {
			updates["current_chapter"] = *reqData.CurrentChapter
		}
		if reqData.Progress != nil {
			updates["progress"] = *reqData.Progress
		}
		if len(updates) > 0 {
			if err := tx.Model(&userCourse).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var appErr *middleware.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		log.Printf("Error updating user course: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(userCourse.ToPublic())
}

func UnenrollCourse(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.NewTokenValidationError("")
	}
	courseID, err := middleware.UUIDParam(c, "course_id")
	if err != nil {
		return err
	}

	db := database.Database.Db

	var userCourse models.UserCourse
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, courseID).First(&userCourse).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("User course", courseID)
		}
		log.Printf("Error fetching user course: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND course_id = ?", user.ID, courseID).
			Delete(&models.UserCourseFinishedChapter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&userCourse).Error
	})
	if err != nil {
		log.Printf("Error deleting enrollment: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(models.Message{Message: "Successfully unenrolled from course"})
}
