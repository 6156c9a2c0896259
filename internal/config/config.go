package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/sirupsen/logrus"
)

const (
	UITerminal = "tui"
	UIPlain    = "plain"
)

// Config holds the application configuration.
type Config struct {
	TimeLimit    time.Duration
	WorldFile    string // empty means the built-in campus
	UI           string
	WrapWidth    int
	LogLevel     logrus.Level
	LogFile      string // empty discards logs
	Environment  string
	GeminiAPIKey string
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	el := errors.NewErrorList()

	limit, err := time.ParseDuration(getEnv("ZUUL_TIME_LIMIT", "600s"))
	if err != nil {
		el.Add(fmt.Errorf("parsing ZUUL_TIME_LIMIT: %w", err))
	} else if limit <= 0 {
		el.Add(fmt.Errorf("ZUUL_TIME_LIMIT must be positive"))
	}

	width, err := strconv.Atoi(getEnv("ZUUL_WRAP_WIDTH", "80"))
	if err != nil {
		el.Add(fmt.Errorf("parsing ZUUL_WRAP_WIDTH: %w", err))
	} else if width < 20 {
		el.Add(fmt.Errorf("ZUUL_WRAP_WIDTH must be at least 20"))
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		el.Add(fmt.Errorf("parsing LOG_LEVEL: %w", err))
	}

	ui := getEnv("ZUUL_UI", UITerminal)
	if ui != UITerminal && ui != UIPlain {
		el.Add(fmt.Errorf("ZUUL_UI must be %q or %q, got %q", UITerminal, UIPlain, ui))
	}

	if err := el.Err(); err != nil {
		return nil, err
	}

	return &Config{
		TimeLimit:    limit,
		WorldFile:    os.Getenv("ZUUL_WORLD_FILE"),
		UI:           ui,
		WrapWidth:    width,
		LogLevel:     level,
		LogFile:      getEnvAllowEmpty("LOG_FILE", "zuul.log"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}, nil
}

// RequireGemini checks that a Gemini API key is configured.
func (c *Config) RequireGemini() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAllowEmpty is like getEnv but honours a variable explicitly set to "".
func getEnvAllowEmpty(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
