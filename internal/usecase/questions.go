package usecase

import (
	"context"

	"leetbot/internal/domain/model"
	"leetbot/internal/domain/ports"
)

// Questions turns question commands into display-ready notifications. Every
// upstream failure collapses into the uniform retry-later unit, so the
// command layer never sees an error or a partial result.
type Questions struct {
	provider ports.QuestionProvider
	logger   ports.Logger
}

// NewQuestions constructs the question use case.
func NewQuestions(provider ports.QuestionProvider, logger ports.Logger) *Questions {
	return &Questions{provider: provider, logger: logger}
}

// Daily renders the active daily challenge.
func (q *Questions) Daily(ctx context.Context) model.Notification {
	slug, err := q.provider.Daily(ctx)
	if err != nil || slug == "" {
		return FailureNotification()
	}
	return q.bySlug(ctx, slug)
}

// Random renders a random question for the requested difficulty.
func (q *Questions) Random(ctx context.Context, difficulty model.Difficulty) model.Notification {
	slug, err := q.provider.Random(ctx, difficulty)
	if err != nil || slug == "" {
		return FailureNotification()
	}
	return q.bySlug(ctx, slug)
}

// Search renders the best keyword match. A miss and an upstream error look
// the same to the user.
func (q *Questions) Search(ctx context.Context, keywords string) model.Notification {
	slug, err := q.provider.Search(ctx, keywords)
	if err != nil || slug == "" {
		return FailureNotification()
	}
	return q.bySlug(ctx, slug)
}

func (q *Questions) bySlug(ctx context.Context, slug string) model.Notification {
	info, err := q.provider.Info(ctx, slug)
	if err != nil {
		q.logger.Error(ctx, "question lookup failed", "slug", slug, "error", err)
		return FailureNotification()
	}
	return QuestionNotification(info)
}
