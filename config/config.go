package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	WorldsPath     string
	CORSOrigins    string
	MaxUploadBytes int
}

var AppConfig *Config

// DefaultMaxUploadBytes caps image uploads at 2 MB
const DefaultMaxUploadBytes = 2 * 1024 * 1024

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:           GetEnv("PORT", "49000"),
		Env:            GetEnv("ENV", "development"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		WorldsPath:     GetEnv("WORLDS_PATH", "./worlds"),
		CORSOrigins:    GetEnv("CORS_ORIGINS", "*"),
		MaxUploadBytes: GetEnvInt("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes),
	}

	if AppConfig.MaxUploadBytes <= 0 {
		log.Fatal("MAX_UPLOAD_BYTES must be positive")
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
