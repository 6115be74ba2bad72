// Package forum implements the community discussion sources.
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
	githubSourceName    = "github-discussions"
	githubBaseURL       = "https://api.github.com"
	githubDelay         = 1 * time.Second
	discussionsPerRepo  = 5
	discussionWindow    = 7 * 24 * time.Hour
	forumRequestTimeout = 10 * time.Second
)

// GitHubDiscussions monitors the discussion boards of watched repositories.
// Repo discussions are fetched over plain REST; the response is a JSON
// array ordered newest first.
type GitHubDiscussions struct {
	BaseURL   string
	Client    *http.Client
	watchlist *config.Watchlist
	delay     time.Duration
	now       func() time.Time
}

// NewGitHubDiscussions creates the source for the watchlist's repos.
func NewGitHubDiscussions(watchlist *config.Watchlist) *GitHubDiscussions {
	return &GitHubDiscussions{
		BaseURL:   githubBaseURL,
		Client:    &http.Client{Timeout: forumRequestTimeout},
		watchlist: watchlist,
		delay:     githubDelay,
		now:       time.Now,
	}
}

// NewGitHubDiscussionsForTest creates the source without inter-repo delays
// and with a fixed clock.
func NewGitHubDiscussionsForTest(
	watchlist *config.Watchlist,
	baseURL string,
	client *http.Client,
	now func() time.Time,
) *GitHubDiscussions {
	return &GitHubDiscussions{
		BaseURL:   baseURL,
		Client:    client,
		watchlist: watchlist,
		delay:     0,
		now:       now,
	}
}

func (g *GitHubDiscussions) Name() string { return githubSourceName }

// FetchDiscussions collects recent discussions from every watched repo.
// Per-repo faults are logged and skipped.
func (g *GitHubDiscussions) FetchDiscussions(ctx context.Context) ([]domain.Discussion, error) {
	var discussions []domain.Discussion

	for i, repo := range g.watchlist.DiscussionRepos {
		if i > 0 && g.delay > 0 {
			time.Sleep(g.delay)
		}

		found, err := g.fetchRepo(ctx, repo)
		if err != nil {
			logger.Warnf("Failed to fetch discussions of %s: %v", repo, err)
			continue
		}
		discussions = append(discussions, found...)
	}

	return discussions, nil
}

func (g *GitHubDiscussions) fetchRepo(ctx context.Context, repo string) ([]domain.Discussion, error) {
	url := fmt.Sprintf("%s/repos/%s/discussions", g.BaseURL, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "ai-dev-workstation/1.0")
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github returned status %d", resp.StatusCode)
	}

	var payload []struct {
		Title     string    `json:"title"`
		HTMLURL   string    `json:"html_url"`
		CreatedAt time.Time `json:"created_at"`
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, fmt.Errorf("invalid discussions response: %w", decodeErr)
	}

	cutoff := g.now().Add(-discussionWindow)

	var discussions []domain.Discussion
	for i, d := range payload {
		if i >= discussionsPerRepo {
			break
		}
		if d.CreatedAt.Before(cutoff) {
			continue
		}
		discussions = append(discussions, domain.Discussion{
			Title:     d.Title,
			URL:       d.HTMLURL,
			Source:    "GitHub - " + repo,
			Relevance: domain.ScoreRelevance(d.Title, g.watchlist.Keywords, g.watchlist.HighValueKeywords),
			Keywords:  domain.ExtractKeywords(d.Title, g.watchlist.Keywords),
			CreatedAt: d.CreatedAt.Format(time.RFC3339),
		})
	}

	return discussions, nil
}
