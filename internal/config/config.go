package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr            string
	Env             string
	JWTSecret       string
	CascadeWorkers  int
	SeedMemberTypes bool
	RequestTimeout  time.Duration
}

// Load reads configuration from environment variables, after loading a .env
// file when one is present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:            getEnv("SOCIAL_ADDR", ":8080"),
		Env:             getEnv("APP_ENV", "development"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		CascadeWorkers:  getEnvInt("CASCADE_WORKERS", 8),
		SeedMemberTypes: getEnvBool("SEED_MEMBER_TYPES", true),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("SOCIAL_ADDR is required")
	}
	if c.CascadeWorkers <= 0 {
		return fmt.Errorf("CASCADE_WORKERS must be positive, got %d", c.CascadeWorkers)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// AuthEnabled reports whether write routes require a bearer token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
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
