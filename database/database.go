package database

import (
	"fmt"
	"log"

	"codecourse/config"
	"codecourse/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	// Build the PostgreSQL connection string
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.AppConfig.DBHost,
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBName,
		config.AppConfig.DBPort,
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)   // Maximum open connections
	sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0) // No timeout

	// Run database migrations
	RunMigrations(db)

	// Ensure the first superuser exists
	if err := SeedFirstSuperuser(db); err != nil {
		log.Fatalf("Superuser seeding failed: %v", err)
	}

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Chapter{},
		&models.ChapterPoint{},
		&models.UserCourse{},
		&models.UserCourseFinishedChapter{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// SeedFirstSuperuser creates the configured superuser account when no
// user with that email exists yet.
func SeedFirstSuperuser(db *gorm.DB) error {
	email := config.AppConfig.FirstSuperuserEmail
	if email == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(config.AppConfig.FirstSuperuserPassword),
		config.AppConfig.SaltRound,
	)
	if err != nil {
		return err
	}

	superuser := models.User{
		Email:          email,
		HashedPassword: string(hashed),
		IsActive:       true,
		IsSuperuser:    true,
	}
	if name := config.AppConfig.FirstSuperuserName; name != "" {
		superuser.UserName = &name
	}

	if err := db.Create(&superuser).Error; err != nil {
		return err
	}
	log.Printf("Created first superuser %s", email)
	return nil
}
