// Package config handles configuration loading for the portal.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the portal. It is constructed once at
// startup and passed into the wiring explicitly; nothing reads the
// environment after Load returns.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool
}

// Load reads configuration from a .env file (when present) and the process
// environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables only")
	}

	return &Config{
		Port:          getEnv("PORT", "3000"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "member_portal"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionTTL:    parseDuration(getEnv("SESSION_TTL", "168h"), 168*time.Hour),
		CookieSecure:  parseBool(getEnv("COOKIE_SECURE", "false"), false),
	}
}

// getEnv reads an environment variable. A variable set to the empty string
// counts as unset and yields the default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func parseBool(value string, defaultValue bool) bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
