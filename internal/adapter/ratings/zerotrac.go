package ratings

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"leetbot/internal/domain/ports"
)

// DefaultTableURL is the published Zerotrac rating table, a tab-separated
// text file with one question per line.
const DefaultTableURL = "https://raw.githubusercontent.com/zerotrac/leetcode_problem_rating/main/ratings.txt"

// Table resolves community difficulty ratings keyed by exact English title.
// It is loaded once at startup; a failed load degrades to an empty table.
type Table struct {
	httpClient *http.Client
	url        string
	logger     ports.Logger

	mu      sync.RWMutex
	byTitle map[string]int
}

var _ ports.RatingSource = (*Table)(nil)

// New builds an empty rating table backed by the given URL.
func New(httpClient *http.Client, url string, logger ports.Logger) *Table {
	if url == "" {
		url = DefaultTableURL
	}
	return &Table{
		httpClient: httpClient,
		url:        url,
		logger:     logger,
		byTitle:    map[string]int{},
	}
}

// Load fetches and parses the rating table, replacing the current contents.
func (t *Table) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url, http.NoBody)
	if err != nil {
		return fmt.Errorf("create ratings request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch ratings table: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("ratings table status %d: %s", resp.StatusCode, string(data))
	}

	parsed, err := parseTable(resp.Body)
	if err != nil {
		return err
	}
	if len(parsed) == 0 {
		return fmt.Errorf("ratings table is empty")
	}

	t.mu.Lock()
	t.byTitle = parsed
	t.mu.Unlock()

	t.logger.Info(ctx, "ratings table loaded", "entries", len(parsed))
	return nil
}

// Rating returns the rating for an exact title, if known.
func (t *Table) Rating(title string) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rating, ok := t.byTitle[title]
	return rating, ok
}

// parseTable reads rating<TAB>id<TAB>title<TAB>… lines; the header and any
// malformed lines are skipped.
func parseTable(r io.Reader) (map[string]int, error) {
	byTitle := map[string]int{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < 3 {
			continue
		}
		rating, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}
		title := strings.TrimSpace(fields[2])
		if title == "" {
			continue
		}
		byTitle[title] = int(rating)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ratings table: %w", err)
	}

	return byTitle, nil
}
