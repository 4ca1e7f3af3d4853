// Package config reads the optional environment overrides. The client
// works with zero configuration; every field here has a fixed default
// matching the live API.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the heritage search/detail/media endpoint root.
	DefaultBaseURL = "http://www.cha.go.kr/cha/"
	// DefaultPalaceBaseURL is the royal-palace endpoint root.
	DefaultPalaceBaseURL = "https://www.heritage.go.kr/"
)

// Config holds the resolved settings.
type Config struct {
	BaseURL       string
	PalaceBaseURL string
	Timeout       time.Duration
	LogLevel      zerolog.Level
}

// Load resolves configuration from the environment, reading a .env file
// first when one is present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:       getEnvOrDefault("KHERITAGE_BASE_URL", DefaultBaseURL),
		PalaceBaseURL: getEnvOrDefault("KHERITAGE_PALACE_BASE_URL", DefaultPalaceBaseURL),
		Timeout:       30 * time.Second,
		LogLevel:      zerolog.InfoLevel,
	}

	if raw := os.Getenv("KHERITAGE_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if raw := os.Getenv("KHERITAGE_LOG_LEVEL"); raw != "" {
		if level, err := zerolog.ParseLevel(raw); err == nil {
			cfg.LogLevel = level
		}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
