package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Auth modes for the identity middleware.
const (
	AuthModeDev    = "dev"
	AuthModeBearer = "bearer"
)

// Config holds everything read from the environment. It is built once in main
// and passed to the components that need it.
type Config struct {
	Port string

	// DatabaseURL, when set, overrides the discrete postgres settings.
	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	SSLMode     string

	SecretKey   string
	AuthMode    string
	AutoMigrate bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      getEnv("DB_PORT", "5432"),
		SSLMode:     getEnv("DB_SSLMODE", "disable"),
		SecretKey:   os.Getenv("SECRET_KEY"),
		AuthMode:    getEnv("AUTH_MODE", AuthModeDev),
		AutoMigrate: os.Getenv("AUTO_MIGRATE") == "true",
	}
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
