// Package config loads and validates application configuration from the
// environment. Loading collects every problem it finds and reports them
// together, so a misconfigured deployment fails fast with a complete list
// instead of one error per restart.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DBConfig holds settings for the PostgreSQL connection pool.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	PoolSize int
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	// JWTSecret signs and verifies every issued token. Loaded once at startup
	// and never mutated afterwards.
	JWTSecret string
	// TokenDuration is the fixed lifetime of an issued token. There is no
	// sliding renewal.
	TokenDuration time.Duration
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB     *DBConfig
	Auth   *AuthConfig
	Server *ServerConfig
}

func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got %q: %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got %q: %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool size within 1..100.
func clampPoolSize(size int, errs *[]string) int {
	if size < 1 {
		*errs = append(*errs, fmt.Sprintf("DB_POOL_SIZE (%d) is less than minimum 1, clamping to 1", size))
		return 1
	}
	if size > 100 {
		*errs = append(*errs, fmt.Sprintf("DB_POOL_SIZE (%d) is greater than maximum 100, clamping to 100", size))
		return 100
	}
	return size
}

// LoadConfig reads environment variables into an AppConfig. All errors
// encountered while loading are aggregated into a single returned error.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	dbConfig := &DBConfig{
		Host:     getOptionalEnv("DB_HOST", "localhost"),
		Port:     getOptionalEnvInt("DB_PORT", 5432, &errs),
		User:     getRequiredEnv("DB_USER", &errs),
		Password: getRequiredEnv("DB_PASSWORD", &errs),
		DBName:   getRequiredEnv("DB_NAME", &errs),
		PoolSize: clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errs), &errs),
	}

	authConfig := &AuthConfig{
		JWTSecret:     getRequiredEnv("JWT_SECRET", &errs),
		TokenDuration: getOptionalEnvDuration("JWT_TOKEN_DURATION", 24*time.Hour, &errs),
	}

	serverConfig := &ServerConfig{
		Port: getOptionalEnv("PORT", "3000"),
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		DB:     dbConfig,
		Auth:   authConfig,
		Server: serverConfig,
	}, nil
}
