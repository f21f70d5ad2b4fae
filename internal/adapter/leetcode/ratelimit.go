package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/semaphore"

	"leetbot/internal/domain/model"
)

// At most this many user-stats requests may be in flight at once. The stats
// path is the only one invoked in bulk (leaderboard refreshes), so it is the
// only guarded one.
const maxConcurrentStats = 8

// Sentinel outcomes for the guarded stats path.
var (
	ErrRateLimited = errors.New("leetcode: rate limited")
	ErrForbidden   = errors.New("leetcode: forbidden")
)

// statsGate bounds concurrent stats requests and desynchronizes bursts by
// holding each slot for a short random delay after the response arrives.
type statsGate struct {
	sem       *semaphore.Weighted
	settleMax time.Duration
	// retryInitial overrides the backoff's first interval; zero keeps the
	// library default.
	retryInitial time.Duration
}

func newStatsGate() *statsGate {
	return &statsGate{
		sem:       semaphore.NewWeighted(maxConcurrentStats),
		settleMax: time.Second,
	}
}

func (g *statsGate) settle(ctx context.Context) {
	if g.settleMax <= 0 {
		return
	}
	delay := time.Duration(rand.Float64() * float64(g.settleMax))
	select {
	case <-time.After(delay):
	case <-ctx.Done():
	}
}

// ProblemsSolvedAndRank fetches a user's global accepted-submission counts.
// Rate-limited attempts are retried with exponential backoff until success
// or a different failure; HTTP 403 aborts on the first attempt.
func (c *Client) ProblemsSolvedAndRank(ctx context.Context, username string) (*model.UserStats, error) {
	var stats *model.UserStats

	operation := func() error {
		s, err := c.fetchUserStats(ctx, username)
		if err != nil {
			if errors.Is(err, ErrRateLimited) {
				return err
			}
			return backoff.Permanent(err)
		}
		stats = s
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 0 // retry until success or a permanent failure
	if c.gate.retryInitial > 0 {
		policy.InitialInterval = c.gate.retryInitial
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}

	return stats, nil
}

func (c *Client) fetchUserStats(ctx context.Context, username string) (*model.UserStats, error) {
	payload := graphQLRequest{
		OperationName: "getProblemsSolvedAndRank",
		Query: `query getProblemsSolvedAndRank($username: String!) {
    matchedUser(username: $username) {
        profile {
            realName
        }
        submitStatsGlobal {
            acSubmissionNum {
                difficulty
                count
            }
        }
    }
}`,
		Variables: map[string]any{"username": username},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal graphql payload: %w", err)
	}

	raw, err := c.guardedPost(ctx, body, username)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data struct {
			MatchedUser *struct {
				Profile struct {
					RealName string `json:"realName"`
				} `json:"profile"`
				SubmitStatsGlobal struct {
					AcSubmissionNum []struct {
						Difficulty string `json:"difficulty"`
						Count      int    `json:"count"`
					} `json:"acSubmissionNum"`
				} `json:"submitStatsGlobal"`
			} `json:"matchedUser"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.Error(ctx, "user stats decode failed", "username", username, "payload", string(raw), "error", err)
		return nil, fmt.Errorf("decode user stats: %w", err)
	}

	matched := resp.Data.MatchedUser
	if matched == nil {
		c.logger.Warn(ctx, "no matching leetcode user", "username", username)
		return nil, fmt.Errorf("user %q not found", username)
	}

	var easy, medium, hard int
	for _, item := range matched.SubmitStatsGlobal.AcSubmissionNum {
		switch item.Difficulty {
		case "Easy":
			easy = item.Count
		case "Medium":
			medium = item.Count
		case "Hard":
			hard = item.Count
		}
	}

	return &model.UserStats{
		RealName: matched.Profile.RealName,
		Submissions: model.Submissions{
			Easy:   easy,
			Medium: medium,
			Hard:   hard,
			Score:  model.Score(easy, medium, hard),
		},
	}, nil
}

// guardedPost issues a stats request while holding a slot on the gate. The
// slot is held through the settle delay so lockstep bursts spread out.
func (c *Client) guardedPost(ctx context.Context, body []byte, username string) ([]byte, error) {
	if err := c.gate.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("acquire stats slot: %w", err)
	}
	defer c.gate.sem.Release(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()
	defer c.gate.settle(ctx)

	switch resp.StatusCode {
	case http.StatusOK:
		raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		return raw, nil
	case http.StatusTooManyRequests:
		c.logger.Warn(ctx, "user stats rate limited", "username", username)
		return nil, ErrRateLimited
	case http.StatusForbidden:
		c.logger.Error(ctx, "user stats forbidden", "username", username)
		return nil, ErrForbidden
	default:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error(ctx, "user stats fetch failed", "username", username, "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}
}
