package ports

import (
	"context"

	"leetbot/internal/domain/model"
)

// QuestionProvider defines read access to the question judge. Slugs identify
// questions; every operation is best-effort and returns an error when the
// upstream cannot fulfill the request right now.
type QuestionProvider interface {
	Daily(ctx context.Context) (string, error)
	Random(ctx context.Context, difficulty model.Difficulty) (string, error)
	Search(ctx context.Context, keywords string) (string, error)
	Info(ctx context.Context, slug string) (*model.QuestionInfo, error)
}
