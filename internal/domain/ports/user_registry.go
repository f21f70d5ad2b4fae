package ports

import "context"

// UserRegistry maps Discord user IDs to LeetCode usernames.
type UserRegistry interface {
	Register(ctx context.Context, discordID, username string) error
	Lookup(ctx context.Context, discordID string) (string, error)
	All(ctx context.Context) (map[string]string, error)
}
