package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	Environment string // local, staging or production

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTKey                   string
	SaltRound                int
	AccessTokenExpireMinutes int
	ResetTokenExpireHours    int

	FirstSuperuserEmail    string
	FirstSuperuserName     string
	FirstSuperuserPassword string

	PistonApiURL         string
	PistonTimeoutSeconds int

	GeminiApiKey string
	GeminiModel  string

	SMTPHost    string
	SMTPPort    string
	EmailSender string
	Password    string // SMTP Password

	FrontendHost string
	CORSOrigins  string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "local"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "codecourse"),

		JWTKey:                   getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound:                getEnvInt("SALT_ROUND", 10),
		AccessTokenExpireMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24*8),
		ResetTokenExpireHours:    getEnvInt("EMAIL_RESET_TOKEN_EXPIRE_HOURS", 48),

		FirstSuperuserEmail:    getEnv("FIRST_SUPERUSER_EMAIL", "admin@example.com"),
		FirstSuperuserName:     getEnv("FIRST_SUPERUSER_USERNAME", "admin"),
		FirstSuperuserPassword: getEnv("FIRST_SUPERUSER_PASSWORD", "changethis"),

		PistonApiURL:         getEnv("PISTON_API_URL", "https://emkc.org/api/v2/piston"),
		PistonTimeoutSeconds: getEnvInt("PISTON_TIMEOUT_SECONDS", 30),

		GeminiApiKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    getEnv("SMTP_PORT", "587"),
		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),

		FrontendHost: getEnv("FRONTEND_HOST", "http://localhost:5173"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:5173"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.FirstSuperuserPassword == "changethis" {
		log.Println("Warning: Using default FIRST_SUPERUSER_PASSWORD. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
