package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	// Bucket that receives a JSON copy of every imported form template.
	// Empty disables archiving.
	ArchiveBucket string

	// Import the built-in global form catalog on startup.
	SeedForms bool
}

func LoadConfig() Config {
	// Best effort; env vars win over .env values.
	_ = godotenv.Load()

	return Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		ArchiveBucket: os.Getenv("GCS_ARCHIVE_BUCKET"),
		SeedForms:     parseBool(os.Getenv("SEED_FORMS")),
	}
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
