package application

import (
	"context"
	"fmt"
	"os"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/johnsirmon/ai-dev-workstation-mac/config"
	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
	resolverPkg "github.com/johnsirmon/ai-dev-workstation-mac/infrastructure/resolver"
	reportPkg "github.com/johnsirmon/ai-dev-workstation-mac/infrastructure/report"
)

// UpdateService orchestrates the full update cycle: resolve latest versions
// -> detect deltas -> scan trending topics -> persist config -> rewrite the
// README -> render the run summary.
type UpdateService struct {
	resolvers *resolverPkg.Registry
	scanner   domain.TrendScanner
	editor    domain.DocumentEditor
	now       func() time.Time
}

// NewUpdateService creates the service with the given collaborators.
func NewUpdateService(
	resolvers *resolverPkg.Registry,
	scanner domain.TrendScanner,
	editor domain.DocumentEditor,
) *UpdateService {
	return &UpdateService{
		resolvers: resolvers,
		scanner:   scanner,
		editor:    editor,
		now:       time.Now,
	}
}

// SetClock overrides the service clock. Used by tests.
func (s *UpdateService) SetClock(now func() time.Time) { s.now = now }

// UpdateOptions holds the file locations for a single run.
type UpdateOptions struct {
	ConfigPath string
	ReadmePath string
	Verbose    bool
}

// UpdateResult is what a run produced, for the CLI summary.
type UpdateResult struct {
	Updates  []domain.VersionUpdate
	Trending []domain.TrendingRepo
	Summary  string
}

// Run executes the full update cycle against the loaded configuration.
// The configuration value is never mutated: the updated state is a new
// value persisted at the end of the run.
func (s *UpdateService) Run(
	ctx context.Context,
	cfg *config.Config,
	opts UpdateOptions,
) (*UpdateResult, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	logger.Info("Checking for tool updates...")
	updates := s.detectUpdates(ctx, cfg)

	logger.Info("Searching for trending tools...")
	trending, err := s.scanner.Scan(ctx, cfg.MonitoringSources.GitHubTopics)
	if err != nil {
		logger.Warnf("Trend scan failed: %v", err)
	}

	timestamp := s.now().Format("2006-01-02")
	next := cfg.WithUpdates(updates, timestamp)
	next.LastUpdateCheck = timestamp
	next.TrendingTools = trending

	if saveErr := config.Save(next, opts.ConfigPath); saveErr != nil {
		return nil, fmt.Errorf("failed to persist tracking state: %w", saveErr)
	}

	if readmeErr := s.rewriteReadme(opts.ReadmePath, updates, trending); readmeErr != nil {
		logger.Errorf("Failed to update %s: %v", opts.ReadmePath, readmeErr)
	}

	return &UpdateResult{
		Updates:  updates,
		Trending: trending,
		Summary:  s.renderSummary(updates, trending),
	}, nil
}

// detectUpdates queries the resolvers for every tracked tool in priority
// order, stopping at the first non-empty answer, and records a delta when
// the answer is newer than the stored version. At most one update per tool
// per run, and never a downgrade.
func (s *UpdateService) detectUpdates(
	ctx context.Context,
	cfg *config.Config,
) []domain.VersionUpdate {
	var updates []domain.VersionUpdate

	for _, tool := range cfg.Tools() {
		latest := s.resolveLatest(ctx, tool)
		if latest == "" {
			logger.Debugf("%s: no upstream version found", tool.Name)
			continue
		}

		if !domain.IsNewerVersion(tool.CurrentVersion, latest) {
			logger.Debugf("%s is up to date: %s", tool.Name, tool.CurrentVersion)
			continue
		}

		logger.Infof(
			"Update found for %s: %s -> %s",
			tool.Name, tool.CurrentVersion, latest,
		)
		updates = append(updates, domain.VersionUpdate{
			Tool:        tool.Name,
			Category:    tool.Category,
			OldVersion:  tool.CurrentVersion,
			NewVersion:  latest,
			Description: tool.Description,
		})
	}

	return updates
}

// resolveLatest walks the resolvers in priority order. A resolver fault is
// logged as a warning and treated as "unknown"; the next source is tried.
func (s *UpdateService) resolveLatest(ctx context.Context, tool domain.TrackedTool) string {
	for _, res := range s.resolvers.All() {
		id := res.Identifier(tool)
		if id == "" {
			continue
		}

		version, err := res.Resolve(ctx, id)
		if err != nil {
			logger.Warnf("[%s] Failed to resolve %q: %v", res.Name(), id, err)
			continue
		}
		if version != "" {
			return version
		}
	}
	return ""
}

// rewriteReadme applies the three best-effort document rewrites. Only
// ai_frameworks rows appear in the README version table.
func (s *UpdateService) rewriteReadme(
	path string,
	updates []domain.VersionUpdate,
	trending []domain.TrendingRepo,
) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	var frameworkUpdates []domain.VersionUpdate
	for _, u := range updates {
		if u.Category == config.CategoryAIFrameworks {
			frameworkUpdates = append(frameworkUpdates, u)
		}
	}

	now := s.now()
	content := string(data)
	content = s.editor.UpdateVersionTable(content, frameworkUpdates, now)
	content = s.editor.UpsertTrendingSection(content, trending)
	content = s.editor.StampGeneratedDate(content, now)

	if writeErr := os.WriteFile(path, []byte(content), 0o644); writeErr != nil {
		return fmt.Errorf("failed to write document: %w", writeErr)
	}

	logger.Infof("%s updated successfully", path)
	return nil
}

// renderSummary builds the Markdown run summary printed to stdout.
func (s *UpdateService) renderSummary(
	updates []domain.VersionUpdate,
	trending []domain.TrendingRepo,
) string {
	if len(updates) == 0 && len(trending) == 0 {
		return "No updates found."
	}

	var sections []reportPkg.Section

	if len(updates) > 0 {
		items := make([]string, 0, len(updates))
		for _, u := range updates {
			items = append(items, fmt.Sprintf(
				"**%s**: %s -> %s", u.Tool, u.OldVersion, u.NewVersion,
			))
		}
		sections = append(sections, reportPkg.Section{
			Title: fmt.Sprintf("Tool Updates Found (%d)", len(updates)),
			Items: items,
		})
	}

	if len(trending) > 0 {
		const maxListed = 5
		var items []string
		for i, t := range trending {
			if i >= maxListed {
				break
			}
			items = append(items, fmt.Sprintf(
				"**%s** (%d stars): %s", t.Name, t.Stars, truncateSummary(t.Description),
			))
		}
		sections = append(sections, reportPkg.Section{
			Title: fmt.Sprintf("Trending Tools Found (%d)", len(trending)),
			Items: items,
		})
	}

	return reportPkg.Render("Update Summary", sections, s.now())
}

func truncateSummary(s string) string {
	const limit = 100
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
