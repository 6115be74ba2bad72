package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Watchlist configures the community monitor: which repositories and
// subreddits to watch and which keywords make a discussion relevant.
type Watchlist struct {
	DiscussionRepos   []string `yaml:"discussion_repos"`
	Subreddits        []string `yaml:"subreddits"`
	Keywords          []string `yaml:"keywords"`
	HighValueKeywords []string `yaml:"high_value_keywords"`
}

// DefaultWatchlist returns the built-in watchlist used when no file is
// present.
func DefaultWatchlist() *Watchlist {
	return &Watchlist{
		DiscussionRepos: []string{
			"microsoft/autogen",
			"langchain-ai/langchain",
			"crewAIInc/crewAI",
			"microsoft/semantic-kernel",
		},
		Subreddits: []string{
			"MachineLearning",
			"artificial",
			"OpenAI",
			"ChatGPT",
			"LocalLLaMA",
		},
		Keywords: []string{
			"agent", "ai", "llm", "gpt", "claude", "automation", "assistant",
			"langchain", "autogen", "crewai", "semantic", "kernel", "function",
			"tool", "api", "integration", "workflow", "orchestration", "mcp",
		},
		HighValueKeywords: []string{
			"agent", "assistant", "automation", "llm", "mcp",
		},
	}
}

// LoadWatchlist reads the watchlist YAML file. An absent file yields the
// defaults; a present but malformed file is an error. Empty lists in the
// file fall back to their defaults so a partial watchlist stays usable.
func LoadWatchlist(path string) (*Watchlist, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultWatchlist(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read watchlist %q: %w", path, err)
	}

	var wl Watchlist
	if unmarshalErr := yaml.Unmarshal(data, &wl); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse watchlist %q: %w", path, unmarshalErr)
	}

	defaults := DefaultWatchlist()
	if len(wl.DiscussionRepos) == 0 {
		wl.DiscussionRepos = defaults.DiscussionRepos
	}
	if len(wl.Subreddits) == 0 {
		wl.Subreddits = defaults.Subreddits
	}
	if len(wl.Keywords) == 0 {
		wl.Keywords = defaults.Keywords
	}
	if len(wl.HighValueKeywords) == 0 {
		wl.HighValueKeywords = defaults.HighValueKeywords
	}

	return &wl, nil
}
