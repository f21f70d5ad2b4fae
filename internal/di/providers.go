package di

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"

	"leetbot/internal/adapter/discord"
	"leetbot/internal/adapter/leetcode"
	"leetbot/internal/adapter/ratings"
	"leetbot/internal/adapter/registry"
	"leetbot/internal/config"
	"leetbot/internal/domain/ports"
)

func provideSlogLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.RequestTimeout}
}

func provideRatings(httpClient *http.Client, cfg *config.Config, logger ports.Logger) *ratings.Table {
	return ratings.New(httpClient, cfg.RatingsURL, logger)
}

func provideLeetCodeClient(httpClient *http.Client, table ports.RatingSource, logger ports.Logger) *leetcode.Client {
	return leetcode.New(httpClient, table, logger)
}

func provideUserRegistry(cfg *config.Config) ports.UserRegistry {
	if cfg.RedisAddr == "" {
		return registry.NewMemory()
	}
	return registry.NewRedis(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
}

func provideDiscordConfig(cfg *config.Config) discord.Config {
	return discord.Config{
		Token:             cfg.DiscordBotToken,
		GuildID:           cfg.GuildID,
		AnnounceChannelID: cfg.AnnounceChannelID,
	}
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
