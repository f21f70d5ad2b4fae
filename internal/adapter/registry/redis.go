package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"leetbot/internal/domain/ports"
)

const usersKey = "leetbot:users"

// Redis keeps Discord→LeetCode mappings in a single hash so the registry
// survives restarts.
type Redis struct {
	client *redis.Client
}

var _ ports.UserRegistry = (*Redis)(nil)

// NewRedis wraps an existing Redis client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Register stores or overwrites the mapping for a Discord user.
func (r *Redis) Register(ctx context.Context, discordID, username string) error {
	if err := r.client.HSet(ctx, usersKey, discordID, username).Err(); err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	return nil
}

// Lookup returns the LeetCode username for a Discord user, or an empty
// string when none is registered.
func (r *Redis) Lookup(ctx context.Context, discordID string) (string, error) {
	username, err := r.client.HGet(ctx, usersKey, discordID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	return username, nil
}

// All returns every registered mapping.
func (r *Redis) All(ctx context.Context) (map[string]string, error) {
	users, err := r.client.HGetAll(ctx, usersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
