package forum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/johnsirmon/ai-dev-workstation-mac/config"
	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
)

const (
	redditSourceName = "reddit"
	redditBaseURL    = "https://www.reddit.com"

	// redditDelay is longer than the GitHub delay: the anonymous Reddit
	// API throttles harder.
	redditDelay = 2 * time.Second

	postsPerSubreddit = 10
)

// Reddit monitors the hot listings of watched subreddits and keeps posts
// whose titles match a watched keyword.
type Reddit struct {
	BaseURL   string
	Client    *http.Client
	watchlist *config.Watchlist
	delay     time.Duration
}

// NewReddit creates the source for the watchlist's subreddits.
func NewReddit(watchlist *config.Watchlist) *Reddit {
	return &Reddit{
		BaseURL:   redditBaseURL,
		Client:    &http.Client{Timeout: forumRequestTimeout},
		watchlist: watchlist,
		delay:     redditDelay,
	}
}

// NewRedditForTest creates the source without inter-subreddit delays.
func NewRedditForTest(watchlist *config.Watchlist, baseURL string, client *http.Client) *Reddit {
	return &Reddit{
		BaseURL:   baseURL,
		Client:    client,
		watchlist: watchlist,
		delay:     0,
	}
}

func (r *Reddit) Name() string { return redditSourceName }

// FetchDiscussions collects keyword-matching hot posts from every watched
// subreddit. Per-subreddit faults are logged and skipped.
func (r *Reddit) FetchDiscussions(ctx context.Context) ([]domain.Discussion, error) {
	var discussions []domain.Discussion

	for i, subreddit := range r.watchlist.Subreddits {
		if i > 0 && r.delay > 0 {
			time.Sleep(r.delay)
		}

		found, err := r.fetchSubreddit(ctx, subreddit)
		if err != nil {
			logger.Warnf("Failed to fetch r/%s: %v", subreddit, err)
			continue
		}
		discussions = append(discussions, found...)
	}

	return discussions, nil
}

func (r *Reddit) fetchSubreddit(ctx context.Context, subreddit string) ([]domain.Discussion, error) {
	url := fmt.Sprintf("%s/r/%s/hot.json?limit=%d", r.BaseURL, subreddit, postsPerSubreddit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	// Reddit rejects the default Go user agent.
	req.Header.Set("User-Agent", "ai-dev-workstation/1.0")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit returned status %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Children []struct {
				Data struct {
					Title     string `json:"title"`
					Permalink string `json:"permalink"`
					Score     int    `json:"score"`
				} `json:"data"`
			} `json:"children"`
		} `json:"data"`
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, fmt.Errorf("invalid listing response: %w", decodeErr)
	}

	var discussions []domain.Discussion
	for _, post := range payload.Data.Children {
		title := post.Data.Title
		keywords := domain.ExtractKeywords(title, r.watchlist.Keywords)
		if len(keywords) == 0 {
			continue
		}

		discussions = append(discussions, domain.Discussion{
			Title:     title,
			URL:       redditBaseURL + post.Data.Permalink,
			Source:    "Reddit - r/" + subreddit,
			Relevance: domain.ScoreRelevance(title, r.watchlist.Keywords, r.watchlist.HighValueKeywords),
			Keywords:  keywords,
			Score:     post.Data.Score,
		})
	}

	return discussions, nil
}
