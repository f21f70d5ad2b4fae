//go:build wireinject

package di

import (
	"github.com/google/wire"

	"leetbot/internal/adapter/discord"
	"leetbot/internal/adapter/leetcode"
	"leetbot/internal/adapter/logging"
	"leetbot/internal/adapter/ratings"
	"leetbot/internal/app"
	"leetbot/internal/config"
	"leetbot/internal/domain/ports"
	"leetbot/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideHTTPClient,
		provideRatings,
		wire.Bind(new(ports.RatingSource), new(*ratings.Table)),
		provideLeetCodeClient,
		wire.Bind(new(ports.QuestionProvider), new(*leetcode.Client)),
		wire.Bind(new(ports.StatsProvider), new(*leetcode.Client)),
		provideUserRegistry,
		usecase.NewQuestions,
		usecase.NewLeaderboard,
		provideDiscordConfig,
		discord.NewBot,
		wire.Bind(new(ports.Announcer), new(*discord.Bot)),
		provideSchedule,
		app.New,
	)
	return nil, nil
}
