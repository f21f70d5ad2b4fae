package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	DiscordBotToken   string
	GuildID           string
	AnnounceChannelID string
	ScheduleCron      string
	RequestTimeout    time.Duration
	RatingsURL        string
	RedisAddr         string
}

const (
	defaultCron    = "0 9 * * *" // 09:00 every day
	defaultTimeout = 10 * time.Second
)

// Load builds a Config from environment variables, reading a local .env
// file first when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DiscordBotToken:   os.Getenv("DISCORD_BOT_TOKEN"),
		GuildID:           os.Getenv("GUILD_ID"),
		AnnounceChannelID: os.Getenv("ANNOUNCE_CHANNEL_ID"),
		ScheduleCron:      getenvDefault("SCHEDULE_CRON", defaultCron),
		RequestTimeout:    parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		RatingsURL:        os.Getenv("RATINGS_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
	}

	if cfg.DiscordBotToken == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
