// Package config provides application configuration management.
// It loads settings from environment variables (optionally seeded from a
// .env file) and provides defaults for the calculator front-end.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Calculator
	GatePolicy        string // "all" (default) or "credited"
	DefaultDepartment string // Department selected at startup (empty = none)
	DefaultSemester   int    // Semester selected at startup (0 = none)

	// Logging
	LogLevel string // Default "warn"

	// Metrics
	MetricsTextfile      string        // Prometheus textfile path (empty = disabled)
	MetricsFlushInterval time.Duration // Interval between periodic textfile writes

	// Observability
	BetterStackToken    string
	BetterStackEndpoint string
	SentryToken         string
	SentryHost          string
	Environment         string
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		GatePolicy:        strings.ToLower(getEnv(EnvGatePolicy, "all")),
		DefaultDepartment: strings.ToLower(getEnv(EnvDefaultDepartment, "")),
		DefaultSemester:   getIntEnv(EnvDefaultSemester, 0),

		LogLevel: getEnv(EnvLogLevel, "warn"),

		MetricsTextfile:      getEnv(EnvMetricsTextfile, ""),
		MetricsFlushInterval: getDurationEnv(EnvMetricsFlushInterval, MetricsFlush),

		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),
		SentryToken:         getEnv(EnvSentryToken, ""),
		SentryHost:          getEnv(EnvSentryHost, ""),
		Environment:         getEnv(EnvEnvironment, "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that configured values are usable
func (c *Config) Validate() error {
	var errs []error

	switch c.GatePolicy {
	case "all", "credited":
	default:
		errs = append(errs, fmt.Errorf("%s must be \"all\" or \"credited\", got %q", EnvGatePolicy, c.GatePolicy))
	}
	if c.DefaultSemester < 0 {
		errs = append(errs, fmt.Errorf("%s cannot be negative, got %d", EnvDefaultSemester, c.DefaultSemester))
	}
	if c.DefaultSemester > 0 && c.DefaultDepartment == "" {
		errs = append(errs, fmt.Errorf("%s requires %s", EnvDefaultSemester, EnvDefaultDepartment))
	}
	if c.MetricsTextfile != "" && c.MetricsFlushInterval < MinMetricsFlush {
		errs = append(errs, fmt.Errorf("%s must be at least %v, got %v", EnvMetricsFlushInterval, MinMetricsFlush, c.MetricsFlushInterval))
	}
	if c.BetterStackEndpoint != "" && c.BetterStackToken == "" {
		errs = append(errs, errors.New(EnvBetterStackEndpoint+" is set but "+EnvBetterStackToken+" is empty"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// MetricsEnabled reports whether metrics should be written to a textfile.
func (c *Config) MetricsEnabled() bool {
	return c.MetricsTextfile != ""
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return duration
		}
	}
	return defaultValue
}
