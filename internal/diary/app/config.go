package app

import (
	"os"
	"strconv"
	"time"

	"github.com/openroam/traveldiary/pkg/jwtx"
)

type Config struct {
	JWTSecret   string        // Required: HS256 signing secret
	JWTIssuer   string        // Optional: issuer claim for tokens (default: traveldiary)
	JWTAudience string        // Optional: audience claim for tokens (default: traveldiary-clients)
	AccessTTL   time.Duration // Optional: access token lifetime (default: 1h)
	RefreshTTL  time.Duration // Optional: refresh token lifetime (default: 24h)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./diary.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getEnvOrDefault("JWT_ISSUER", "traveldiary"),
		JWTAudience: getEnvOrDefault("JWT_AUDIENCE", "traveldiary-clients"),
		// TTLs are plain seconds, e.g. JWT_EXPIRES_IN=3600.
		AccessTTL:  getEnvSecondsOrDefault("JWT_EXPIRES_IN", jwtx.DefaultAccessTokenTTL),
		RefreshTTL: getEnvSecondsOrDefault("JWT_REFRESH_EXPIRES_IN", jwtx.DefaultRefreshTokenTTL),

		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "diary.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvSecondsOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
