package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Upstream 104 API
	Job104BaseURL string

	// Server
	Port  string
	Debug bool

	// Timeouts and limits
	HTTPTimeoutSeconds int
	DetailMaxChars     int // 0 means no truncation

	// Document uploads
	UploadDir string

	// Optional OpenAI key; only its presence is checked (startup warning)
	OpenAIAPIKey string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Upstream 104 API
		Job104BaseURL: getEnv("JOB104_BASE_URL", "https://www.104.com.tw"),

		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// Timeouts and limits
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		DetailMaxChars:     getEnvInt("DETAIL_MAX_CHARS", 0),

		// Document uploads
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		// OpenAI
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Job104BaseURL == "" {
		return &ConfigError{Field: "JOB104_BASE_URL", Message: "JOB104_BASE_URL must not be empty"}
	}

	if c.HTTPTimeoutSeconds <= 0 {
		return &ConfigError{Field: "HTTP_TIMEOUT_SECONDS", Message: "HTTP_TIMEOUT_SECONDS must be positive"}
	}

	if c.DetailMaxChars < 0 {
		return &ConfigError{Field: "DETAIL_MAX_CHARS", Message: "DETAIL_MAX_CHARS must not be negative"}
	}

	if c.UploadDir == "" {
		return &ConfigError{Field: "UPLOAD_DIR", Message: "UPLOAD_DIR must not be empty"}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
