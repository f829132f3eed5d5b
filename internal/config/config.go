package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
// DATABASE_URL and DATABASE_NAME are optional: when either is missing
// the store stays unconfigured and data endpoints report it instead of
// the process refusing to start.
type Config struct {
	App struct {
		Port string
	}
	Mongo struct {
		URI      string
		Database string
	}
}

func Load(path string) (*Config, error) {
	if path != "" {
		// Missing .env is fine, env vars may come from the host.
		_ = godotenv.Load(path)
	}

	cfg := &Config{}
	cfg.App.Port = getEnv("PORT", "8000")
	cfg.Mongo.URI = os.Getenv("DATABASE_URL")
	cfg.Mongo.Database = os.Getenv("DATABASE_NAME")

	return cfg, nil
}

// StoreConfigured reports whether both database settings are present.
func (c *Config) StoreConfigured() bool {
	return c.Mongo.URI != "" && c.Mongo.Database != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
