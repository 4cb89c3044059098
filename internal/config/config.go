package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken string
	MongoURI string
	MongoDB  string
	BotDebug bool
}

// Load reads .env if present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		MongoURI: os.Getenv("MONGODB_URI"),
		MongoDB:  getenv("MONGODB_DATABASE", "kinomap"),
		BotDebug: os.Getenv("BOT_DEBUG") == "1",
	}
	if cfg.BotToken == "" {
		return nil, errors.New("BOT_TOKEN is required")
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_URI is required")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
