package cmd

import (
	"os"

	gh "github.com/google/go-github/v66/github"
	"go.uber.org/dig"

	"github.com/johnsirmon/ai-dev-workstation-mac/application"
	"github.com/johnsirmon/ai-dev-workstation-mac/config"
	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
	"github.com/johnsirmon/ai-dev-workstation-mac/infrastructure/forum"
	"github.com/johnsirmon/ai-dev-workstation-mac/infrastructure/report"
	resolverPkg "github.com/johnsirmon/ai-dev-workstation-mac/infrastructure/resolver"
	githubResolver "github.com/johnsirmon/ai-dev-workstation-mac/infrastructure/resolver/github"
	"github.com/johnsirmon/ai-dev-workstation-mac/infrastructure/resolver/homebrew"
	"github.com/johnsirmon/ai-dev-workstation-mac/infrastructure/resolver/npm"
	"github.com/johnsirmon/ai-dev-workstation-mac/infrastructure/resolver/pypi"
	"github.com/johnsirmon/ai-dev-workstation-mac/infrastructure/trending"
)

// registerProviders registers every constructor with the DIG container,
// bottom-up: clients -> registries -> services.
func registerProviders(container *dig.Container) error {
	providers := []interface{}{
		newGitHubClient,
		newWatchlist,
		newRegistry,
		newScanner,
		report.NewEditor,
		newDiscussionSources,
		application.NewUpdateService,
		application.NewMonitorService,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}
	return nil
}

// newGitHubClient builds the shared GitHub API client. An auth token raises
// the rate limit from 60 to 5000 requests per hour; unauthenticated access
// still works for small watchlists.
func newGitHubClient() *gh.Client {
	client := gh.NewClient(nil)
	if token := resolveTokenFromEnv(); token != "" {
		client = client.WithAuthToken(token)
	}
	return client
}

func resolveTokenFromEnv() string {
	for _, name := range []string{"GITHUB_TOKEN", "GH_TOKEN"} {
		if token := os.Getenv(name); token != "" {
			return token
		}
	}
	return ""
}

func newWatchlist() (*config.Watchlist, error) {
	return config.LoadWatchlist(watchlist)
}

// newRegistry wires the version resolvers. Registration order is the
// resolution priority: homebrew, pypi, npm, github.
func newRegistry(client *gh.Client) *resolverPkg.Registry {
	registry := resolverPkg.NewRegistry()
	registry.Register(homebrew.New())
	registry.Register(pypi.New())
	registry.Register(npm.New())
	registry.Register(githubResolver.New(client))
	return registry
}

func newScanner(client *gh.Client) domain.TrendScanner {
	return trending.NewScanner(client)
}

func newDiscussionSources(wl *config.Watchlist) []domain.DiscussionSource {
	return []domain.DiscussionSource{
		forum.NewGitHubDiscussions(wl),
		forum.NewReddit(wl),
	}
}

func injectUpdateService() (*application.UpdateService, error) {
	container := dig.New()
	if err := registerProviders(container); err != nil {
		return nil, err
	}

	var service *application.UpdateService
	if err := container.Invoke(func(s *application.UpdateService) {
		service = s
	}); err != nil {
		return nil, err
	}
	return service, nil
}

func injectMonitorService() (*application.MonitorService, error) {
	container := dig.New()
	if err := registerProviders(container); err != nil {
		return nil, err
	}

	var service *application.MonitorService
	if err := container.Invoke(func(s *application.MonitorService) {
		service = s
	}); err != nil {
		return nil, err
	}
	return service, nil
}
