package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is the fixed, read-only configuration of a running instance. It is
// built once in main and passed to the components that need it.
type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimeZone string
	JWTSecret  string
	UploadDir  string
}

// Load reads configuration from the environment with defaults.
func Load() Config {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Config{
		Port:       getEnv("PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "armada"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimeZone: getEnv("DB_TIMEZONE", "UTC"),
		JWTSecret:  getEnv("JWT_SECRET", "supersecret"),
		UploadDir:  getEnv("UPLOAD_DIR", "./uploads"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
