package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Search   SearchConfig
	Postgres PostgresConfig
	OpenAI   OpenAIConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// DataConfig locates the four tabular source files.
type DataConfig struct {
	Dir               string
	ProjectFile       string
	AddressFile       string
	ConfigurationFile string
	VariantFile       string
}

// SearchConfig holds search-related limits.
type SearchConfig struct {
	// EmptyFilterLimit caps the default result prefix when a query carries no
	// extractable filters.
	EmptyFilterLimit int
	// MaxResults caps the matched rows handed to materialization.
	MaxResults int
}

// PostgresConfig holds the optional search-log database configuration. The
// search log is disabled when DSN is empty.
type PostgresConfig struct {
	DSN                string
	MaxConnections     int
	MaxIdleConnections int
}

// OpenAIConfig holds OpenAI-compatible API configuration for filter
// extraction and summary generation.
type OpenAIConfig struct {
	APIKey          string
	APIBase         string
	ChatModel       string
	ChatTemperature float64
	ChatMaxTokens   int
	Timeout         int
	Enabled         bool
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8000),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Data: DataConfig{
			Dir:               getEnv("DATA_DIR", "./data"),
			ProjectFile:       getEnv("DATA_PROJECT_FILE", "project.csv"),
			AddressFile:       getEnv("DATA_ADDRESS_FILE", "ProjectAddress.csv"),
			ConfigurationFile: getEnv("DATA_CONFIGURATION_FILE", "ProjectConfiguration.csv"),
			VariantFile:       getEnv("DATA_VARIANT_FILE", "ProjectConfigurationVariant.csv"),
		},
		Search: SearchConfig{
			EmptyFilterLimit: getEnvAsInt("SEARCH_EMPTY_FILTER_LIMIT", 100),
			MaxResults:       getEnvAsInt("SEARCH_MAX_RESULTS", 50),
		},
		Postgres: PostgresConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 2),
		},
		OpenAI: OpenAIConfig{
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			APIBase:         getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			ChatModel:       getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			ChatTemperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.2),
			ChatMaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 1024),
			Timeout:         getEnvAsInt("OPENAI_TIMEOUT", 30),
			Enabled:         getEnv("OPENAI_API_KEY", "") != "",
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.Search.MaxResults <= 0 {
		return nil, fmt.Errorf("SEARCH_MAX_RESULTS must be positive, got %d", cfg.Search.MaxResults)
	}
	if cfg.Search.EmptyFilterLimit <= 0 {
		return nil, fmt.Errorf("SEARCH_EMPTY_FILTER_LIMIT must be positive, got %d", cfg.Search.EmptyFilterLimit)
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logrus.Warnf("Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		logrus.Warnf("Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
