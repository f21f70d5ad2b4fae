package ports

import (
	"context"

	"leetbot/internal/domain/model"
)

// Announcer posts a notification to the configured announcement channel.
type Announcer interface {
	Announce(ctx context.Context, notification model.Notification) error
}
