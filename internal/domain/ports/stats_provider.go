package ports

import (
	"context"

	"leetbot/internal/domain/model"
)

// StatsProvider resolves a user's accepted-submission counts and rank data.
type StatsProvider interface {
	ProblemsSolvedAndRank(ctx context.Context, username string) (*model.UserStats, error)
}
