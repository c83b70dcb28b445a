package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFiles are loaded by LoadEnvFiles when no paths are given, first file wins
var DefaultEnvFiles = []string{".env.local", ".env"}

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort     string
	RequestTimeout time.Duration

	// OpenAI configuration
	OpenAIAPIKey  string
	OpenAIBaseURL string

	// Agent configuration
	ProfilePath string

	LogLevel slog.Level
}

// LoadEnvFiles loads KEY=VALUE files into the process environment.
// Missing files are skipped and variables already set are never overridden.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		paths = DefaultEnvFiles
	}

	existing := make([]string, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to stat env file %s: %w", path, err)
		}
		existing = append(existing, path)
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from environment variables and command-line flags.
// Flags take precedence over environment variables. extra lets a command register
// its own flags on the same set before parsing.
func LoadConfig(name string, args []string, extra ...func(*flag.FlagSet)) (*Config, error) {
	cfg := &Config{}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	// Define flags
	serverPort := flags.String("server-port", getEnv("SERVER_PORT", "8080"), "Server port")
	requestTimeout := flags.Duration("request-timeout", getEnvAsDuration("REQUEST_TIMEOUT", 60*time.Second), "Per-request timeout for the HTTP server (0 disables)")
	openAIKey := flags.String("openai-key", getEnv("OPENAI_API_KEY", ""), "OpenAI API key")
	openAIBaseURL := flags.String("openai-base-url", getEnv("OPENAI_BASE_URL", ""), "OpenAI API base URL (empty uses the SDK default)")
	profilePath := flags.String("profile", getEnv("AGENT_PROFILE", ""), "Path to a YAML agent profile (empty uses the built-in CTBTO profile)")
	logLevel := flags.String("log-level", getEnv("LOG_LEVEL", "info"), "Log level: debug, info, warn, error")

	for _, register := range extra {
		register(flags)
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	// Set config values
	cfg.ServerPort = *serverPort
	cfg.RequestTimeout = *requestTimeout
	cfg.OpenAIAPIKey = *openAIKey
	cfg.OpenAIBaseURL = *openAIBaseURL
	cfg.ProfilePath = *profilePath

	if err := cfg.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", *logLevel, err)
	}

	// Validate required fields
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required (set via environment variable, .env.local or -openai-key flag)")
	}

	return cfg, nil
}

// NewLogger returns a text logger on stderr at the configured level
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: c.LogLevel,
	}))
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
