package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Host     string
	Port     string
	LogLevel string
	Debug    bool

	// Generation service
	GoogleAPIKey      string
	GeminiModel       string
	GenerationTimeout time.Duration

	// Uploads
	UploadDir     string
	MaxUploadSize int64

	SecretKey string
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:         getEnv("HOST", "0.0.0.0"),
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Debug:        getEnv("DEBUG", "false") == "true",
		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
		UploadDir:    getEnv("UPLOAD_DIR", "static/uploads"),
		SecretKey:    getEnv("SECRET_KEY", "petpsych-ai-secret-key-2025"),
	}

	maxUpload, err := parseBytes(getEnv("MAX_UPLOAD_SIZE", ""), 100<<20)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE: %w", err)
	}
	cfg.MaxUploadSize = maxUpload

	genTimeout, err := parseDuration(getEnv("GENERATION_TIMEOUT", ""), 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATION_TIMEOUT: %w", err)
	}
	cfg.GenerationTimeout = genTimeout

	if cfg.GoogleAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBytes(value string, defaultValue int64) (int64, error) {
	if value == "" {
		return defaultValue, nil
	}
	return strconv.ParseInt(value, 10, 64)
}

func parseDuration(value string, defaultValue time.Duration) (time.Duration, error) {
	if value == "" {
		return defaultValue, nil
	}
	return time.ParseDuration(value)
}
