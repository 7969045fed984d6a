package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/text/language"
)

// Config holds all application configuration.
// Supports environment variables with sensible defaults.
//
// Environment Variables:
// Provider Configuration:
// - OPENAI_API_KEY: API key for the translation provider (required for translating)
// - OPENAI_API_URL: API endpoint URL override (optional, for OpenAI-compatible backends)
// - OPENAI_MODEL: Model name to use (default: provider's default)
//
// Translate Configuration:
// - SOURCE_LANG: source language tag (default: en)
// - TARGET_LANG: target language tag (default: my)
// - TRANSLATE_CONCURRENCY: parallel provider calls during a pass (default: 1)
//
// Memory Configuration:
// - MEMORY_DIR: directory holding the translation memory store (default: .)
//
// System Configuration:
// - LOG_LEVEL: debug|info|warn|error (default: info)

type Config struct {
	Provider  ProviderConfig  `json:"provider"`
	Translate TranslateConfig `json:"translate"`
	Memory    MemoryConfig    `json:"memory"`
	System    SystemConfig    `json:"system"`
}

// ProviderConfig holds the configuration for the translation backend.
type ProviderConfig struct {
	APIKey string `json:"api_key"`
	APIURL string `json:"api_url"`
	Model  string `json:"model"`
}

// TranslateConfig holds the language pair and pass tuning.
type TranslateConfig struct {
	SourceLanguage language.Tag `json:"source_language"`
	TargetLanguage language.Tag `json:"target_language"`
	Concurrency    int          `json:"concurrency"`
}

// MemoryConfig holds the translation memory location.
type MemoryConfig struct {
	Dir string `json:"dir"`
}

// SystemConfig holds the system configuration.
type SystemConfig struct {
	LogLevel string `json:"log_level"`
}

// Option is a function type for configuring Config
type Option func(*Config)

// NewFromEnv creates a new Config instance with values from environment
// variables and options. The provider API key is only validated when a
// translation is actually requested, so read-only commands work without it.
func NewFromEnv(opts ...Option) (*Config, error) {
	sourceLang, err := parseLanguage(getEnvString("SOURCE_LANG", "en"))
	if err != nil {
		return nil, fmt.Errorf("invalid SOURCE_LANG: %w", err)
	}
	targetLang, err := parseLanguage(getEnvString("TARGET_LANG", "my"))
	if err != nil {
		return nil, fmt.Errorf("invalid TARGET_LANG: %w", err)
	}

	config := &Config{
		Provider: ProviderConfig{
			APIKey: getEnvString("OPENAI_API_KEY", ""),
			APIURL: getEnvString("OPENAI_API_URL", ""),
			Model:  getEnvString("OPENAI_MODEL", ""),
		},
		Translate: TranslateConfig{
			SourceLanguage: sourceLang,
			TargetLanguage: targetLang,
			Concurrency:    getEnvInt("TRANSLATE_CONCURRENCY", 1),
		},
		Memory: MemoryConfig{
			Dir: getEnvString("MEMORY_DIR", "."),
		},
		System: SystemConfig{
			LogLevel: getEnvString("LOG_LEVEL", "info"),
		},
	}

	// Apply custom options
	for _, opt := range opts {
		opt(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks configuration consistency.
func (c *Config) validate() error {
	if c.Translate.Concurrency < 1 {
		return fmt.Errorf("TRANSLATE_CONCURRENCY must be at least 1")
	}
	if c.Translate.SourceLanguage == c.Translate.TargetLanguage {
		return fmt.Errorf("source and target language must differ")
	}
	return nil
}

func parseLanguage(value string) (language.Tag, error) {
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, fmt.Errorf("cannot parse language tag %q: %w", value, err)
	}
	return tag, nil
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
