// Package trending discovers newly created repositories under watched
// GitHub topics.
package trending

import (
	"context"
	"fmt"
	"time"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
)

const (
	// MinStars is the popularity threshold: repositories must exceed it
	// (strictly) to be kept.
	MinStars = 50

	// perTopicLimit caps each topic query to a small first page.
	perTopicLimit = 5

	// topicDelay spaces out search calls to stay within the
	// unauthenticated GitHub rate limit.
	topicDelay = 1 * time.Second
)

// Scanner implements domain.TrendScanner over the GitHub search API.
type Scanner struct {
	client *gh.Client
	delay  time.Duration
	now    func() time.Time
}

// NewScanner creates a scanner backed by the given GitHub client.
func NewScanner(client *gh.Client) *Scanner {
	return &Scanner{
		client: client,
		delay:  topicDelay,
		now:    time.Now,
	}
}

// NewScannerForTest creates a scanner without inter-topic delays and with a
// fixed clock.
func NewScannerForTest(client *gh.Client, now func() time.Time) *Scanner {
	return &Scanner{client: client, delay: 0, now: now}
}

// Scan queries each topic for repositories created today, sorted by stars,
// and keeps those above the popularity threshold. Per-topic faults are
// logged and skipped; duplicates across topics are intentionally kept.
func (s *Scanner) Scan(ctx context.Context, topics []string) ([]domain.TrendingRepo, error) {
	var found []domain.TrendingRepo

	for i, topic := range topics {
		if i > 0 && s.delay > 0 {
			time.Sleep(s.delay)
		}

		repos, err := s.scanTopic(ctx, topic)
		if err != nil {
			logger.Warnf("Failed to search topic %q: %v", topic, err)
			continue
		}
		found = append(found, repos...)
	}

	return found, nil
}

func (s *Scanner) scanTopic(ctx context.Context, topic string) ([]domain.TrendingRepo, error) {
	query := fmt.Sprintf("topic:%s created:>=%s", topic, s.now().Format("2006-01-02"))

	result, _, err := s.client.Search.Repositories(ctx, query, &gh.SearchOptions{
		Sort:        "stars",
		Order:       "desc",
		ListOptions: gh.ListOptions{PerPage: perTopicLimit},
	})
	if err != nil {
		return nil, err
	}

	var repos []domain.TrendingRepo
	for _, repo := range result.Repositories {
		if repo.GetStargazersCount() <= MinStars {
			continue
		}

		description := repo.GetDescription()
		if description == "" {
			description = "No description available"
		}

		repos = append(repos, domain.TrendingRepo{
			Name:        repo.GetName(),
			URL:         repo.GetHTMLURL(),
			Description: description,
			Stars:       repo.GetStargazersCount(),
			Language:    repo.GetLanguage(),
			Topic:       topic,
			CreatedAt:   repo.GetCreatedAt().Format(time.RFC3339),
		})
	}

	return repos, nil
}
