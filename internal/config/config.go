// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port                 int    // HTTP listen port
	LogLevel             string // debug, info, warn, error
	DevMode              bool   // Pretty logs, permissive CORS
	ScoringMode          string // "zscore" (default) or "bounds"
	IntelIntervalSeconds int    // Refresh cadence for the simulated intelligence feed
	IntelBatchSize       int    // Messages generated per refresh
}

// Load reads configuration from environment variables. A .env file is
// loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnvInt("PORT", 8090),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DevMode:              getEnvBool("DEV_MODE", false),
		ScoringMode:          getEnv("APEX_SCORING_MODE", "zscore"),
		IntelIntervalSeconds: getEnvInt("APEX_INTEL_INTERVAL_SECONDS", 8),
		IntelBatchSize:       getEnvInt("APEX_INTEL_BATCH_SIZE", 8),
	}

	if cfg.ScoringMode != "zscore" && cfg.ScoringMode != "bounds" {
		return nil, fmt.Errorf("invalid APEX_SCORING_MODE %q (must be zscore or bounds)", cfg.ScoringMode)
	}
	if cfg.IntelIntervalSeconds < 1 {
		return nil, fmt.Errorf("APEX_INTEL_INTERVAL_SECONDS must be >= 1, got %d", cfg.IntelIntervalSeconds)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable value, returning a fallback if
// the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
