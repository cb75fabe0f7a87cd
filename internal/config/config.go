package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported values for DATABASE_DRIVER.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Config holds the application configuration.
type Config struct {
	ServerPort     string `env:"SERVER_PORT,default=:8080"`
	DatabaseDriver string `env:"DATABASE_DRIVER,default=sqlite3"`
	DatabaseURL    string `env:"DATABASE_URL,default=urls.db"`
	BaseURL        string `env:"BASE_URL,default=http://localhost:8080"` // Prefix of every short_url
	LogLevel       string `env:"LOG_LEVEL,default=info"`

	ShortCodeLength      int `env:"SHORT_CODE_LENGTH,default=6"`
	ShortCodeMaxAttempts int `env:"SHORT_CODE_MAX_ATTEMPTS,default=10"` // Per code length
	ShortCodeMaxLength   int `env:"SHORT_CODE_MAX_LENGTH,default=10"`
}

// Load reads the configuration from environment variables.
// It looks for a .env file in the current directory for development convenience.
func Load() (*Config, error) {
	// Attempt to load .env file, but don't fail if it's not there (for production)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", ":8080"),
		DatabaseDriver:       getEnv("DATABASE_DRIVER", DriverSQLite),
		DatabaseURL:          getEnv("DATABASE_URL", "urls.db"),
		BaseURL:              strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		ShortCodeLength:      getEnvInt("SHORT_CODE_LENGTH", 6),
		ShortCodeMaxAttempts: getEnvInt("SHORT_CODE_MAX_ATTEMPTS", 10),
		ShortCodeMaxLength:   getEnvInt("SHORT_CODE_MAX_LENGTH", 10),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must not be empty")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("BASE_URL %q is not an absolute URL", c.BaseURL)
	}

	if c.ShortCodeLength <= 0 {
		return fmt.Errorf("SHORT_CODE_LENGTH must be positive, got %d", c.ShortCodeLength)
	}
	if c.ShortCodeMaxAttempts <= 0 {
		return fmt.Errorf("SHORT_CODE_MAX_ATTEMPTS must be positive, got %d", c.ShortCodeMaxAttempts)
	}
	if c.ShortCodeMaxLength < c.ShortCodeLength {
		return fmt.Errorf("SHORT_CODE_MAX_LENGTH (%d) is shorter than SHORT_CODE_LENGTH (%d)",
			c.ShortCodeMaxLength, c.ShortCodeLength)
	}
	return nil
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt falls back when the variable is unset or not a number.
func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
