package main

import (
	"os"
	"time"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Port      string
	Env       string
	MongoURL  string
	MongoDB   string
	RedisURL  string
	JWTSecret string
	CacheTTL  time.Duration
}

// LoadConfig reads configuration from environment variables.
// The JWT secret falls back to an insecure default so local development
// works out of the box; production deployments must set JWT_SECRET.
func LoadConfig() Config {
	return Config{
		Port:      getEnv("PORT", "3000"),
		Env:       getEnv("ENV", "development"),
		MongoURL:  getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "storefront"),
		RedisURL:  getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret: getEnv("JWT_SECRET", "your_secret_key"),
		CacheTTL:  15 * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
