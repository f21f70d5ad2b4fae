package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"leetbot/internal/adapter/discord"
	"leetbot/internal/adapter/ratings"
	"leetbot/internal/domain/ports"
	"leetbot/internal/usecase"
)

// App manages the bot lifecycle: the rating table load, the Discord
// session, and the daily announcement schedule.
type App struct {
	cron      *cron.Cron
	bot       *discord.Bot
	announcer ports.Announcer
	questions *usecase.Questions
	ratings   *ratings.Table
	logger    ports.Logger
	schedule  string
}

// New constructs an App instance.
func New(
	bot *discord.Bot,
	announcer ports.Announcer,
	questions *usecase.Questions,
	ratings *ratings.Table,
	logger ports.Logger,
	schedule string,
) *App {
	return &App{
		cron:      cron.New(),
		bot:       bot,
		announcer: announcer,
		questions: questions,
		ratings:   ratings,
		logger:    logger,
		schedule:  schedule,
	}
}

// Run opens the Discord session and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	if err := a.ratings.Load(ctx); err != nil {
		a.logger.Warn(ctx, "ratings table unavailable, continuing without ratings", "error", err)
	}

	if err := a.bot.Open(ctx); err != nil {
		return err
	}
	defer func() {
		if err := a.bot.Close(); err != nil {
			a.logger.Error(context.Background(), "discord session close failed", "error", err)
		}
	}()

	if err := a.scheduleAnnouncement(); err != nil {
		return err
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleAnnouncement() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		notification := a.questions.Daily(ctx)
		if err := a.announcer.Announce(ctx, notification); err != nil {
			a.logger.Error(ctx, "daily announcement failed", "error", err)
		}
	})
	return err
}
