package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration, loaded from the environment
type Config struct {
	// Server
	Host string
	Port int

	// Storage
	StorageType string
	RedisURL    string

	// Translator service
	TranslatorEndpoint string
	TranslatorKey      string
	TranslatorRegion   string

	// Content safety service
	ContentSafetyEndpoint string
	ContentSafetyKey      string

	// Moderation
	ModerationThreshold float64

	// Rate limiting
	RateLimitPerSecond float64
	RateLimitBurst     int

	// External call timeout
	ClientTimeout time.Duration
}

// Load reads configuration from the environment, first loading a .env file
// if one is present
func Load(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	} else {
		logger.Info("loaded configuration from .env")
	}

	cfg := &Config{
		Host:                  getEnv("HOST", ""),
		Port:                  getEnvInt("PORT", 8080),
		StorageType:           getEnv("STORAGE_TYPE", "memory"),
		RedisURL:              getEnv("REDIS_URL", ""),
		TranslatorEndpoint:    getEnv("TRANSLATOR_ENDPOINT", ""),
		TranslatorKey:         getEnv("TRANSLATOR_KEY", ""),
		TranslatorRegion:      getEnv("TRANSLATOR_REGION", "francecentral"),
		ContentSafetyEndpoint: getEnv("CONTENT_SAFETY_ENDPOINT", ""),
		ContentSafetyKey:      getEnv("CONTENT_SAFETY_KEY", ""),
		ModerationThreshold:   getEnvFloat("MODERATION_THRESHOLD", 2.0),
		RateLimitPerSecond:    getEnvFloat("RATE_LIMIT_PER_SECOND", 0),
		RateLimitBurst:        getEnvInt("RATE_LIMIT_BURST", 20),
		ClientTimeout:         getEnvDuration("CLIENT_TIMEOUT", 10*time.Second),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
