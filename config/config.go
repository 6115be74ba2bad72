package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
)

// Config is the tracking state persisted in the tools-tracking JSON file.
// It is loaded once at startup, treated as an immutable value during the
// run, and rewritten in full at the end.
type Config struct {
	TrackedTools      map[string]map[string]ToolEntry `json:"tracked_tools"`
	MonitoringSources MonitoringSources               `json:"monitoring_sources"`
	LastUpdateCheck   string                          `json:"last_update_check,omitempty"`
	TrendingTools     []domain.TrendingRepo           `json:"trending_tools,omitempty"`
}

// ToolEntry holds the per-tool metadata, keyed by category and tool name in
// the surrounding maps.
type ToolEntry struct {
	CurrentVersion  string `json:"current_version"`
	Description     string `json:"description"`
	Source          string `json:"source,omitempty"`
	PyPIPackage     string `json:"pypi_package,omitempty"`
	NPMPackage      string `json:"npm_package,omitempty"`
	HomebrewFormula string `json:"homebrew_formula,omitempty"`
	LastUpdated     string `json:"last_updated,omitempty"`
}

// MonitoringSources configures the trend scanner.
type MonitoringSources struct {
	GitHubTopics []string `json:"github_topics"`
}

// CategoryAIFrameworks is the category whose rows the README version table
// tracks.
const CategoryAIFrameworks = "ai_frameworks"

// Load reads and parses the tracking file. A missing file, malformed JSON,
// or schema violation is a fatal configuration fault for the process.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tracking file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := json.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("invalid JSON in tracking file %q: %w", path, unmarshalErr)
	}

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, fmt.Errorf("invalid tracking file %q: %w", path, validateErr)
	}

	return &cfg, nil
}

// Save writes the tracking state back as indented JSON, replacing the file
// in one full rewrite.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tracking file: %w", err)
	}
	if writeErr := os.WriteFile(path, append(data, '\n'), 0o644); writeErr != nil {
		return fmt.Errorf("failed to write tracking file %q: %w", path, writeErr)
	}
	return nil
}

// validate checks the explicit schema so malformed entries fail fast with a
// descriptive error instead of a missing-key fault deep in traversal.
func validate(cfg *Config) error {
	if len(cfg.TrackedTools) == 0 {
		return fmt.Errorf("tracked_tools must have at least one category")
	}
	for category, tools := range cfg.TrackedTools {
		if len(tools) == 0 {
			return fmt.Errorf("tracked_tools.%s has no tools", category)
		}
		for name, entry := range tools {
			if entry.CurrentVersion == "" {
				return fmt.Errorf(
					"tracked_tools.%s.%s: current_version is required",
					category, name,
				)
			}
			if entry.Source == "" && entry.PyPIPackage == "" &&
				entry.NPMPackage == "" && entry.HomebrewFormula == "" {
				return fmt.Errorf(
					"tracked_tools.%s.%s: at least one of source, pypi_package, npm_package, homebrew_formula is required",
					category, name,
				)
			}
		}
	}
	return nil
}

// Tools flattens the category map into a deterministic list, sorted by
// category then tool name, so every run resolves tools in the same order.
func (c *Config) Tools() []domain.TrackedTool {
	categories := make([]string, 0, len(c.TrackedTools))
	for cat := range c.TrackedTools {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var tools []domain.TrackedTool
	for _, cat := range categories {
		names := make([]string, 0, len(c.TrackedTools[cat]))
		for name := range c.TrackedTools[cat] {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			entry := c.TrackedTools[cat][name]
			tools = append(tools, domain.TrackedTool{
				Name:            name,
				Category:        cat,
				CurrentVersion:  entry.CurrentVersion,
				Description:     entry.Description,
				Source:          entry.Source,
				PyPIPackage:     entry.PyPIPackage,
				NPMPackage:      entry.NPMPackage,
				HomebrewFormula: entry.HomebrewFormula,
				LastUpdated:     entry.LastUpdated,
			})
		}
	}
	return tools
}

// ToolNames returns the sorted tool names of one category. Used by the
// monitor to count tracked-tool mentions in discussion titles.
func (c *Config) ToolNames(category string) []string {
	tools, ok := c.TrackedTools[category]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithUpdates returns a new Config with the detected updates applied:
// bumped current_version and last_updated stamps. The receiver is not
// mutated; the caller decides when the new value is persisted.
func (c *Config) WithUpdates(updates []domain.VersionUpdate, timestamp string) *Config {
	next := &Config{
		TrackedTools:      make(map[string]map[string]ToolEntry, len(c.TrackedTools)),
		MonitoringSources: c.MonitoringSources,
		LastUpdateCheck:   c.LastUpdateCheck,
		TrendingTools:     c.TrendingTools,
	}
	for cat, tools := range c.TrackedTools {
		next.TrackedTools[cat] = make(map[string]ToolEntry, len(tools))
		for name, entry := range tools {
			next.TrackedTools[cat][name] = entry
		}
	}

	for _, u := range updates {
		tools, ok := next.TrackedTools[u.Category]
		if !ok {
			continue
		}
		entry, ok := tools[u.Tool]
		if !ok {
			continue
		}
		entry.CurrentVersion = u.NewVersion
		entry.LastUpdated = timestamp
		tools[u.Tool] = entry
	}

	return next
}
