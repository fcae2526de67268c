package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Accrual  AccrualConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Timezone string
}

// AccrualConfig holds the leave accrual schedule configuration. RunHour is
// the hour of day, in the organization timezone, during which the daily run
// fires. LockStaleAfter is the age past which a held job lock is treated as
// abandoned and reclaimed.
type AccrualConfig struct {
	RunHour        int
	LockStaleAfter time.Duration
}

func Load() (*Config, error) {
	// .env is optional outside local development.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hrops"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("ORG_TIMEZONE", "Asia/Manila"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	runHour, err := strconv.Atoi(getEnv("ACCRUAL_RUN_HOUR", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACCRUAL_RUN_HOUR: %w", err)
	}

	staleAfter, err := time.ParseDuration(getEnv("ACCRUAL_LOCK_STALE_AFTER", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACCRUAL_LOCK_STALE_AFTER: %w", err)
	}

	config.Accrual = AccrualConfig{
		RunHour:        runHour,
		LockStaleAfter: staleAfter,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Accrual.RunHour < 0 || c.Accrual.RunHour > 23 {
		return fmt.Errorf("ACCRUAL_RUN_HOUR must be between 0 and 23")
	}
	if c.Accrual.LockStaleAfter <= 0 {
		return fmt.Errorf("ACCRUAL_LOCK_STALE_AFTER must be positive")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid ORG_TIMEZONE: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
