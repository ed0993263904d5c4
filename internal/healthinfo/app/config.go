package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/healthinfo/pkg/cryptox"
)

const (
	defaultUsername = "admin"
	defaultPassword = "secret"
)

type Config struct {
	Port                int           // HTTP server port (default: 3000)
	DatabaseFile        string        // Path to the SQLite database file (default: health.db)
	Username            string        // API username (default: admin)
	Password            string        // API password (default: secret, ignored when PasswordHash is set)
	PasswordHash        string        // Optional: argon2id PHC string for the API password
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	MetricsEnabled      bool          // Serve /metrics (default: true)
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is loaded first; variables already set take precedence.
func LoadConfig() Config {
	_ = loadDotEnv(".env")

	cfg := Config{
		Port:                getEnvIntOrDefault("PORT", 3000),
		DatabaseFile:        getEnvOrDefault("HEALTH_DATABASE_FILE", "health.db"),
		Username:            getEnvOrDefault("HEALTH_API_USERNAME", defaultUsername),
		Password:            os.Getenv("HEALTH_API_PASSWORD"),
		PasswordHash:        os.Getenv("HEALTH_API_PASSWORD_HASH"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		MetricsEnabled:      getEnvBoolOrDefault("METRICS_ENABLED", true),
	}

	if cfg.Password == "" && cfg.PasswordHash == "" {
		cfg.Password = defaultPassword
	}

	return cfg
}

// Validate reports the first setting that would stop the service from starting.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d: must be between 1 and 65535", c.Port)
	}
	if c.DatabaseFile == "" {
		return errors.New("HEALTH_DATABASE_FILE must not be empty")
	}
	if c.Username == "" {
		return errors.New("HEALTH_API_USERNAME must not be empty")
	}
	if c.PasswordHash != "" && !cryptox.IsPHCHash(c.PasswordHash) {
		return errors.New("HEALTH_API_PASSWORD_HASH is not an argon2id PHC string")
	}
	return nil
}

// Credentials returns the single credential pair the API accepts.
func (c Config) Credentials() cryptox.StaticCredentials {
	return cryptox.StaticCredentials{
		Username:     c.Username,
		Password:     c.Password,
		PasswordHash: c.PasswordHash,
	}
}

// UsingDefaultCredentials reports whether the built-in demo password is active.
func (c Config) UsingDefaultCredentials() bool {
	return c.PasswordHash == "" && c.Password == defaultPassword
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
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

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
