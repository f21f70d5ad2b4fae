package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"leetbot/internal/domain/model"
	"leetbot/internal/domain/ports"
)

// Leaderboard tracks registered users and ranks their solve records. Stats
// fetches run concurrently; the provider's own gate bounds them upstream.
type Leaderboard struct {
	stats    ports.StatsProvider
	registry ports.UserRegistry
	logger   ports.Logger
}

// NewLeaderboard constructs the leaderboard use case.
func NewLeaderboard(stats ports.StatsProvider, registry ports.UserRegistry, logger ports.Logger) *Leaderboard {
	return &Leaderboard{stats: stats, registry: registry, logger: logger}
}

// Register links a Discord user to a LeetCode username. The username is
// validated with a stats fetch before it is stored.
func (l *Leaderboard) Register(ctx context.Context, discordID, username string) model.Notification {
	stats, err := l.stats.ProblemsSolvedAndRank(ctx, username)
	if err != nil {
		l.logger.Warn(ctx, "registration lookup failed", "username", username, "error", err)
		return model.Notification{
			Title:       "Could not verify that LeetCode username.",
			Description: fmt.Sprintf("No stats found for `%s`. Check the spelling and try again.", username),
			Color:       colorDefault,
		}
	}

	if err := l.registry.Register(ctx, discordID, username); err != nil {
		l.logger.Error(ctx, "registration store failed", "username", username, "error", err)
		return FailureNotification()
	}

	return model.Notification{
		Title:       fmt.Sprintf("Registered %s", username),
		Description: fmt.Sprintf("Current score: **%d**. You now appear on the leaderboard.", stats.Submissions.Score),
		Color:       colorEasy,
	}
}

// Stats renders the solve record for an explicit username, or for the
// invoking user's registered one when the argument is empty.
func (l *Leaderboard) Stats(ctx context.Context, discordID, username string) model.Notification {
	if username == "" {
		registered, err := l.registry.Lookup(ctx, discordID)
		if err != nil {
			l.logger.Error(ctx, "registry lookup failed", "discord_id", discordID, "error", err)
			return FailureNotification()
		}
		if registered == "" {
			return model.Notification{
				Title:       "No LeetCode username on file.",
				Description: "Pass a username or link one with `/register`.",
				Color:       colorDefault,
			}
		}
		username = registered
	}

	stats, err := l.stats.ProblemsSolvedAndRank(ctx, username)
	if err != nil {
		l.logger.Error(ctx, "stats fetch failed", "username", username, "error", err)
		return FailureNotification()
	}

	return StatsNotification(username, stats)
}

type boardEntry struct {
	username string
	stats    *model.UserStats
}

// Board fetches stats for every registered user and renders them ranked by
// score. Users whose fetch fails are skipped rather than shown partially.
func (l *Leaderboard) Board(ctx context.Context) model.Notification {
	users, err := l.registry.All(ctx)
	if err != nil {
		l.logger.Error(ctx, "registry listing failed", "error", err)
		return FailureNotification()
	}
	if len(users) == 0 {
		return model.Notification{
			Title:       "Leaderboard",
			Description: "Nobody is registered yet. Link a username with `/register`.",
			Color:       colorDefault,
		}
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		entries []boardEntry
	)
	for _, username := range users {
		wg.Add(1)
		go func(username string) {
			defer wg.Done()
			stats, err := l.stats.ProblemsSolvedAndRank(ctx, username)
			if err != nil {
				l.logger.Warn(ctx, "leaderboard entry skipped", "username", username, "error", err)
				return
			}
			mu.Lock()
			entries = append(entries, boardEntry{username: username, stats: stats})
			mu.Unlock()
		}(username)
	}
	wg.Wait()

	if len(entries) == 0 {
		return FailureNotification()
	}

	sort.Slice(entries, func(i, j int) bool {
		si, sj := entries[i].stats.Submissions.Score, entries[j].stats.Submissions.Score
		if si != sj {
			return si > sj
		}
		return entries[i].username < entries[j].username
	})

	var b strings.Builder
	for i, entry := range entries {
		sub := entry.stats.Submissions
		fmt.Fprintf(&b, "**%d.** %s — **%d** pts (E:%d M:%d H:%d)\n",
			i+1, entry.username, sub.Score, sub.Easy, sub.Medium, sub.Hard)
	}

	return model.Notification{
		Title:       "Leaderboard",
		Description: b.String(),
		Color:       colorDefault,
		Footer:      fmt.Sprintf("%d of %d registered users", len(entries), len(users)),
	}
}
