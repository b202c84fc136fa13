package config

import (
	"errors"
	"os"
	"time"
)

// app config, provider selection plus server/auth knobs
type Config struct {
	Provider string

	Port      string
	JWTSecret string

	RedisAddr       string
	RefreshTokenTTL time.Duration

	ReaperSchedule string
	ReaperEnabled  bool
	ReaperMaxAge   time.Duration
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Provider:        getEnvOrDefault("AI_PROVIDER", "gemini"),
		Port:            getEnvOrDefault("PORT", "8080"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", "dev"),
		RedisAddr:       getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RefreshTokenTTL: getEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		ReaperSchedule:  getEnvOrDefault("INVITE_REAPER_SCHEDULE", "0 3 * * *"),
		ReaperEnabled:   getEnvOrDefault("INVITE_REAPER_ENABLED", "false") == "true",
		ReaperMaxAge:    getEnvDuration("INVITE_REAPER_MAX_AGE", 30*24*time.Hour),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	// Gemini validation is handled by gemini.NewConfig()
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
