// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// AdminToken is the shared token for the admin endpoints (price
	// configuration updates, export). Required. Clients send it in the
	// X-Admin-Token header.
	AdminToken string

	// SpaceCount is the number of numbered parking spaces in the lot.
	// Defaults to 20. Session opens reject space numbers outside 1..SpaceCount.
	SpaceCount int

	// ReportTimezone is the IANA timezone used for night-window evaluation
	// and report bucketing. Defaults to "America/Guayaquil", where the lot
	// operates. Must name a loadable time.Location.
	ReportTimezone string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or
// describing the first malformed value.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ReportTimezone: getEnv("REPORT_TIMEZONE", "America/Guayaquil"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.AdminToken = os.Getenv("ADMIN_TOKEN")
	if cfg.AdminToken == "" {
		missing = append(missing, "ADMIN_TOKEN")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	spaces := getEnv("SPACE_COUNT", "20")
	n, err := strconv.Atoi(spaces)
	if err != nil || n < 1 {
		return Config{}, fmt.Errorf("SPACE_COUNT must be a positive integer, got %q", spaces)
	}
	cfg.SpaceCount = n

	if _, err := time.LoadLocation(cfg.ReportTimezone); err != nil {
		return Config{}, fmt.Errorf("REPORT_TIMEZONE %q: %w", cfg.ReportTimezone, err)
	}

	return cfg, nil
}

// Location returns the time.Location named by ReportTimezone.
// Load has already validated it, so lookup failure here is a programming error.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ReportTimezone)
	if err != nil {
		panic(fmt.Sprintf("config: timezone %q vanished after validation: %v", c.ReportTimezone, err))
	}
	return loc
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
