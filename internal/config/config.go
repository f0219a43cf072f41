package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Database
	DatabaseURL string

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// API tokens accepted on the export/test surface (§6), pan_-prefixed.
	APITokens []string

	// Rate limiting on the CSV export endpoint
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Load reads configuration from environment variables, loading a local
// .env file first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:        getEnv("DATABASE_URL", dsnFromPGVars()),
		Port:               getEnv("PORT", getEnv("FLASK_PORT", "5000")),
		CORSOrigins:        strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:                getEnv("ENV", "development"),
		APITokens:          splitNonEmpty(getEnv("PUSH_ANALYTICS_API_TOKENS", "")),
		RateLimitPerMinute: getInt("PUSH_ANALYTICS_EXPORT_RATE_PER_MIN", 100),
		RateLimitBurst:     getInt("PUSH_ANALYTICS_EXPORT_RATE_BURST", 10),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if len(c.APITokens) == 0 {
		return fmt.Errorf("PUSH_ANALYTICS_API_TOKENS must list at least one token")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var parsed int
	if _, err := fmt.Sscanf(value, "%d", &parsed); err != nil {
		return defaultValue
	}
	return parsed
}

// dsnFromPGVars assembles a libpq keyword/value connection string from the
// PGHOST/PGPORT/PGDATABASE/PGUSER/PGPASSWORD/PGSSLMODE variables (§6), for
// deployments that set those instead of a single DATABASE_URL. Returns ""
// when PGHOST is unset, so DATABASE_URL's own default of "" is preserved.
func dsnFromPGVars() string {
	host := os.Getenv("PGHOST")
	if host == "" {
		return ""
	}

	return fmt.Sprintf(
		"host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		host,
		getEnv("PGPORT", "5432"),
		os.Getenv("PGDATABASE"),
		os.Getenv("PGUSER"),
		os.Getenv("PGPASSWORD"),
		getEnv("PGSSLMODE", "disable"),
	)
}

func splitNonEmpty(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
