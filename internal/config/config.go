package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// HTTP settings
	BindAddr string

	// NewsAPI settings
	NewsAPIKey     string
	NewsAPIBaseURL string
	NewsLanguage   string
	NewsDomains    string // optional comma-separated domain allow-list

	// Gemini settings
	GeminiAPIKey      string
	GeminiModel       string
	MaxGeminiRequests int // daily budget for AI calls (0 = unlimited)

	// Aggregation settings
	KeywordsConfigPath string
	NewsLimit          int // news items fed into one analysis

	// Timeouts
	QueryTimeout time.Duration // per news provider query
	AITimeout    time.Duration // per AI completion

	// App settings
	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		BindAddr:           "0.0.0.0:8080",
		NewsAPIBaseURL:     "https://newsapi.org/v2",
		NewsLanguage:       "en",
		GeminiModel:        "gemini-1.5-flash",
		MaxGeminiRequests:  0,
		KeywordsConfigPath: "configs/keywords.yaml",
		NewsLimit:          10,
		QueryTimeout:       4 * time.Second,
		AITimeout:          20 * time.Second,
	}

	// Load from environment
	cfg.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	cfg.BindAddr = getEnvOrDefault("BIND_ADDR", cfg.BindAddr)
	cfg.NewsAPIBaseURL = getEnvOrDefault("NEWS_API_BASE_URL", cfg.NewsAPIBaseURL)
	cfg.NewsLanguage = getEnvOrDefault("NEWS_LANGUAGE", cfg.NewsLanguage)
	cfg.NewsDomains = os.Getenv("NEWS_DOMAINS")
	cfg.GeminiModel = getEnvOrDefault("GEMINI_MODEL", cfg.GeminiModel)
	cfg.KeywordsConfigPath = getEnvOrDefault("KEYWORDS_CONFIG_PATH", cfg.KeywordsConfigPath)

	cfg.NewsLimit = getEnvIntOrDefault("NEWS_LIMIT", cfg.NewsLimit)
	cfg.MaxGeminiRequests = getEnvIntOrDefault("MAX_GEMINI_REQUESTS", cfg.MaxGeminiRequests)

	cfg.QueryTimeout = getEnvDurationOrDefault("QUERY_TIMEOUT", cfg.QueryTimeout)
	cfg.AITimeout = getEnvDurationOrDefault("AI_TIMEOUT", cfg.AITimeout)

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

// Validate checks structural settings only. Provider credentials are
// deliberately optional: a missing key degrades the pipeline instead of
// failing startup.
func (c *Config) Validate() error {
	if c.BindAddr == "" {
		return fmt.Errorf("BIND_ADDR must not be empty")
	}
	if c.NewsLimit <= 0 {
		return fmt.Errorf("NEWS_LIMIT must be positive")
	}
	if c.MaxGeminiRequests < 0 {
		return fmt.Errorf("MAX_GEMINI_REQUESTS cannot be negative")
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("QUERY_TIMEOUT must be positive")
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive")
	}
	return nil
}

// GeminiConfigured reports whether AI enrichment can be attempted at all.
func (c *Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

// NewsAPIConfigured reports whether the NewsAPI provider has credentials.
func (c *Config) NewsAPIConfigured() bool {
	return c.NewsAPIKey != ""
}
