package userController

import (
	"errors"
	"fmt"
	"log"

	"codecourse/config"
	"codecourse/database"
	"codecourse/middleware"
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*models.UserRegister)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.NewEmailValidationError(fmt.Sprintf("Email '%s' already exists", reqData.Email))
	}

	// Check if username already exists
	if reqData.UserName != nil {
		if err := db.Where("user_name = ?", *reqData.UserName).First(&models.User{}).Error; err == nil {
			return middleware.NewItemAlreadyExistsError(*reqData.UserName)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.NewInternalServerError("Failed to process your request")
	}

	newUser := models.User{
		Email:          reqData.Email,
		UserName:       reqData.UserName,
		HashedPassword: string(hashedPassword),
		IsActive:       true,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(newUser.ToPublic())
}

func ReadUserMe(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.NewTokenValidationError("")
	}

	return c.JSON(user.ToPublic())
}

func UpdateUserMe(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.NewTokenValidationError("")
	}
	reqData, ok := c.Locals("validatedUser").(*models.UserUpdateMe)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	db := database.Database.Db

	if reqData.Email != nil {
		var existing models.User
		if err := db.Where("email = ?", *reqData.Email).First(&existing).Error; err == nil && existing.ID != user.ID {
			return middleware.NewItemAlreadyExistsError(*reqData.Email)
		}
	}

	updates := make(map[string]interface{})
	if reqData.Email != nil {
		updates["email"] = *reqData.Email
	}
	if reqData.UserName != nil {
		updates["user_name"] = *reqData.UserName
	}
	if len(updates) > 0 {
		if err := db.Model(user).Updates(updates).Error; err != nil {
			log.Printf("Error updating user: %v", err)
			return middleware.NewDatabaseOperationError("")
		}
	}

	return c.JSON(user.ToPublic())
}

func UpdatePasswordMe(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.NewTokenValidationError("")
	}
	reqData, ok := c.Locals("validatedPassword").(*models.UpdatePassword)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(reqData.CurrentPassword)) != nil {
		return middleware.NewPasswordValidationError("Incorrect password. Make sure your current password is correct.")
	}
	if reqData.CurrentPassword == reqData.NewPassword {
		return middleware.NewPasswordValidationError("New password cannot be the same as the current one")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.NewInternalServerError("Failed to process your request")
	}

	db := database.Database.Db
	if err := db.Model(user).Update("hashed_password", string(hashedPassword)).Error; err != nil {
		log.Printf("Error updating password: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(models.Message{Message: "🔐 Password successfully updated "})
}

func DeleteUserMe(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.NewTokenValidationError("")
	}

	if user.IsSuperuser {
		return middleware.NewPermissionDeniedError("Super users are not allowed to delete themselves")
	}

	db := database.Database.Db
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserCourseFinishedChapter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserCourse{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		log.Printf("Error deleting user: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(models.Message{Message: "👋 User deleted successfully"})
}

func GetUsers(c *fiber.Ctx) error {
	pagination := middleware.GetPagination(c)
	db := database.Database.Db

	var users []models.User
	if err := db.Offset(pagination.Skip).Limit(pagination.Limit).Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	publicUsers := make([]models.UserPublic, 0, len(users))
	for i := range users {
		publicUsers = append(publicUsers, users[i].ToPublic())
	}

	var count *int64
	if pagination.IncludeCount {
		var total int64
		if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
			log.Printf("Error counting users: %v", err)
			return middleware.NewDatabaseOperationError("")
		}
		count = &total
	}

	return c.JSON(models.UsersPublic{Data: publicUsers, Count: count})
}

func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*models.UserCreate)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.NewItemAlreadyExistsError(reqData.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.NewInternalServerError("Failed to process your request")
	}

	newUser := models.User{
		Email:          reqData.Email,
		UserName:       reqData.UserName,
		HashedPassword: string(hashedPassword),
		IsActive:       true,
	}
	if reqData.IsActive != nil {
		newUser.IsActive = *reqData.IsActive
	}
	if reqData.IsSuperuser != nil {
		newUser.IsSuperuser = *reqData.IsSuperuser
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(newUser.ToPublic())
}

func GetUserByID(c *fiber.Ctx) error {
	userID, err := middleware.UUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("User", userID)
		}
		log.Printf("Error fetching user: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(user.ToPublic())
}

func UpdateUser(c *fiber.Ctx) error {
	userID, err := middleware.UUIDParam(c, "user_id")
	if err != nil {
		return err
	}
	reqData, ok := c.Locals("validatedUser").(*models.UserUpdate)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	db := database.Database.Db

	var dbUser models.User
	if err := db.First(&dbUser, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("User", userID)
		}
		log.Printf("Error fetching user: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	if reqData.Email != nil {
		var existing models.User
		if err := db.Where("email = ?", *reqData.Email).First(&existing).Error; err == nil && existing.ID != userID {
			return middleware.NewItemAlreadyExistsError("User")
		}
	}

	updates := make(map[string]interface{})
	if reqData.Email != nil {
		updates["email"] = *reqData.Email
	}
	if reqData.UserName != nil {
		updates["user_name"] = *reqData.UserName
	}
	if reqData.IsActive != nil {
		updates["is_active"] = *reqData.IsActive
	}
	if reqData.IsSuperuser != nil {
		updates["is_superuser"] = *reqData.IsSuperuser
	}
	if reqData.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.NewInternalServerError("Failed to process your request")
		}
		updates["hashed_password"] = string(hashedPassword)
	}

	if len(updates) > 0 {
		if err := db.Model(&dbUser).Updates(updates).Error; err != nil {
			log.Printf("Error updating user: %v", err)
			return middleware.NewDatabaseOperationError("")
		}
	}

	return c.JSON(dbUser.ToPublic())
}

func DeleteUser(c *fiber.Ctx) error {
	currentUser := middleware.CurrentUser(c)
	if currentUser == nil {
		return middleware.NewTokenValidationError("")
	}
	userID, err := middleware.UUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NewItemNotFoundError("User", userID)
		}
		log.Printf("Error fetching user: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	if user.ID == currentUser.ID {
		return middleware.NewPermissionDeniedError("Super users are not allowed to delete themselves")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserCourseFinishedChapter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserCourse{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		log.Printf("Error deleting user: %v", err)
		return middleware.NewDatabaseOperationError("")
	}

	return c.JSON(models.Message{Message: "User deleted successfully"})
}
