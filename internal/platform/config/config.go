// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	Environment string
	DatabaseURL string
	JWTSecret   string
	FrontendDir string

	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string
}

// Load reads a local .env when present, then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:        getEnv("APP_ADDR", ":8080"),
		Environment: getEnv("APP_ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-me"),
		FrontendDir: getEnv("FRONTEND_DIR", ""),

		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", ""),
	}
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate enforces settings that must not fall back to defaults outside
// development.
func (c Config) Validate() error {
	if c.IsProduction() {
		if c.JWTSecret == "" || c.JWTSecret == "dev-secret-change-me" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set in production")
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
