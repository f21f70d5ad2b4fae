package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"leetbot/internal/adapter/markdown"
	"leetbot/internal/domain/model"
	"leetbot/internal/domain/ports"
)

const (
	graphQLEndpoint = "https://leetcode.com/graphql"
	problemLinkBase = "https://leetcode.com/problems/"
	userAgent       = "Mozilla/5.0 LeetCode API"
)

// Client implements QuestionProvider and StatsProvider against the LeetCode
// GraphQL endpoint. All operations are best-effort: failures are logged and
// returned as errors for the caller to absorb.
type Client struct {
	httpClient *http.Client
	ratings    ports.RatingSource
	logger     ports.Logger

	endpoint string
	gate     *statsGate
}

var (
	_ ports.QuestionProvider = (*Client)(nil)
	_ ports.StatsProvider    = (*Client)(nil)
)

// New creates a LeetCode client. The HTTP client is shared and carries the
// request timeout; ratings may be nil when no rating table is available.
func New(httpClient *http.Client, ratings ports.RatingSource, logger ports.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		ratings:    ratings,
		logger:     logger,
		endpoint:   graphQLEndpoint,
		gate:       newStatsGate(),
	}
}

type graphQLRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Daily returns the title slug of the active daily coding challenge.
func (c *Client) Daily(ctx context.Context) (string, error) {
	payload := graphQLRequest{
		OperationName: "daily",
		Query: `query daily {
    challenge: activeDailyCodingChallengeQuestion {
        question {
            titleSlug
        }
    }
}`,
	}

	var resp struct {
		Data struct {
			Challenge struct {
				Question struct {
					TitleSlug string `json:"titleSlug"`
				} `json:"question"`
			} `json:"challenge"`
		} `json:"data"`
	}

	if err := c.post(ctx, payload, &resp); err != nil {
		c.logger.Error(ctx, "daily question fetch failed", "error", err)
		return "", err
	}

	slug := resp.Data.Challenge.Question.TitleSlug
	if slug == "" {
		c.logger.Error(ctx, "daily question response missing slug")
		return "", fmt.Errorf("empty daily challenge data")
	}

	return slug, nil
}

// Random returns the slug of a random question, filtered server-side unless
// the wildcard difficulty is passed.
func (c *Client) Random(ctx context.Context, difficulty model.Difficulty) (string, error) {
	filters := map[string]any{}
	if difficulty != model.DifficultyRandom {
		filters["difficulty"] = string(difficulty)
	}

	payload := graphQLRequest{
		OperationName: "randomQuestion",
		Query: `query randomQuestion($categorySlug: String, $filters: QuestionListFilterInput) {
    randomQuestion(categorySlug: $categorySlug, filters: $filters) {
        titleSlug
    }
}`,
		Variables: map[string]any{
			"categorySlug": "all-code-essentials",
			"filters":      filters,
		},
	}

	var resp struct {
		Data struct {
			RandomQuestion struct {
				TitleSlug string `json:"titleSlug"`
			} `json:"randomQuestion"`
		} `json:"data"`
	}

	if err := c.post(ctx, payload, &resp); err != nil {
		c.logger.Error(ctx, "random question fetch failed", "difficulty", string(difficulty), "error", err)
		return "", err
	}

	slug := resp.Data.RandomQuestion.TitleSlug
	if slug == "" {
		c.logger.Error(ctx, "random question response missing slug", "difficulty", string(difficulty))
		return "", fmt.Errorf("empty random question data")
	}

	return slug, nil
}

// Search returns the slug of the first question matching the keywords, or an
// empty slug when nothing matches.
func (c *Client) Search(ctx context.Context, keywords string) (string, error) {
	payload := graphQLRequest{
		OperationName: "problemsetQuestionList",
		Query: `query problemsetQuestionList(
    $categorySlug: String,
    $limit: Int,
    $skip: Int,
    $filters: QuestionListFilterInput
) {
    problemsetQuestionList: questionList(
        categorySlug: $categorySlug,
        limit: $limit,
        skip: $skip,
        filters: $filters
    ) {
        questions: data {
            titleSlug
        }
    }
}`,
		Variables: map[string]any{
			"categorySlug": "",
			"skip":         0,
			"limit":        1,
			"filters":      map[string]any{"searchKeywords": keywords},
		},
	}

	var resp struct {
		Data struct {
			ProblemsetQuestionList struct {
				Questions []struct {
					TitleSlug string `json:"titleSlug"`
				} `json:"questions"`
			} `json:"problemsetQuestionList"`
		} `json:"data"`
	}

	if err := c.post(ctx, payload, &resp); err != nil {
		c.logger.Error(ctx, "question search failed", "keywords", keywords, "error", err)
		return "", err
	}

	questions := resp.Data.ProblemsetQuestionList.Questions
	if len(questions) == 0 {
		return "", nil
	}

	return questions[0].TitleSlug, nil
}

// Info fetches the full metadata for a slug. Paid-only questions come back
// with empty body fields and skip the rating lookup.
func (c *Client) Info(ctx context.Context, slug string) (*model.QuestionInfo, error) {
	c.logger.Info(ctx, "fetching question info", "slug", slug)

	payload := graphQLRequest{
		OperationName: "questionInfo",
		Query: `query questionInfo($titleSlug: String!) {
    question(titleSlug: $titleSlug) {
        questionFrontendId
        title
        difficulty
        content
        stats
        isPaidOnly
    }
}`,
		Variables: map[string]any{"titleSlug": slug},
	}

	var resp struct {
		Data struct {
			Question *struct {
				QuestionFrontendID string `json:"questionFrontendId"`
				Title              string `json:"title"`
				Difficulty         string `json:"difficulty"`
				Content            string `json:"content"`
				Stats              string `json:"stats"`
				IsPaidOnly         bool   `json:"isPaidOnly"`
			} `json:"question"`
		} `json:"data"`
	}

	if err := c.post(ctx, payload, &resp); err != nil {
		c.logger.Error(ctx, "question info fetch failed", "slug", slug, "error", err)
		return nil, err
	}

	q := resp.Data.Question
	if q == nil || q.Title == "" {
		c.logger.Error(ctx, "question info response malformed", "slug", slug)
		return nil, fmt.Errorf("question %q not found", slug)
	}

	// The stats field is a JSON document encoded as a string inside the
	// outer response.
	var stats struct {
		TotalAcceptedRaw   int    `json:"totalAcceptedRaw"`
		TotalSubmissionRaw int    `json:"totalSubmissionRaw"`
		AcRate             string `json:"acRate"`
	}
	if err := json.Unmarshal([]byte(q.Stats), &stats); err != nil {
		c.logger.Error(ctx, "question stats decode failed", "slug", slug, "stats", q.Stats, "error", err)
		return nil, fmt.Errorf("decode question stats: %w", err)
	}

	content := q.Content
	if q.IsPaidOnly {
		content = ""
	}

	rating := 0
	if !q.IsPaidOnly && c.ratings != nil {
		if r, ok := c.ratings.Rating(q.Title); ok {
			rating = r
		}
	}

	description, exampleOne, followUp := markdown.ParseContent(content)

	return &model.QuestionInfo{
		Premium:         q.IsPaidOnly,
		QuestionID:      parseInt(q.QuestionFrontendID),
		Difficulty:      q.Difficulty,
		Title:           q.Title,
		Link:            problemLinkBase + slug,
		TotalAccepted:   stats.TotalAcceptedRaw,
		TotalSubmission: stats.TotalSubmissionRaw,
		AcRate:          parseRate(stats.AcRate),
		QuestionRating:  rating,
		Description:     description,
		ExampleOne:      exampleOne,
		FollowUp:        followUp,
	}, nil
}

func (c *Client) post(ctx context.Context, payload graphQLRequest, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://leetcode.com")
	req.Header.Set("Referer", "https://leetcode.com")
	req.Header.Set("Cookie", "csrftoken=; LEETCODE_SESSION=;")
	req.Header.Set("x-csrftoken", "")
	req.Header.Set("User-Agent", userAgent)
}

func parseInt(val string) int {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return n
}

func parseRate(val string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64)
	if err != nil {
		return 0
	}
	return f
}
