// backend/config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config struct holds all configuration for the application
type Config struct {
	DatabaseURL string
	JWTSecret   string
	HashScheme  string // "legacy" (sha256 hex, compatível com os hashes já gravados) ou "bcrypt"
	ServerPort  string
}

var AppConfig *Config

// LoadConfig loads config from .env file
func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		HashScheme:  getEnv("HASH_SCHEME", "legacy"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
