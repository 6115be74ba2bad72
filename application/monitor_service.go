package application

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/johnsirmon/ai-dev-workstation-mac/config"
	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
	reportPkg "github.com/johnsirmon/ai-dev-workstation-mac/infrastructure/report"
)

const (
	maxTrendingKeywords  = 10
	maxToolMentions      = 5
	maxListedDiscussions = 10
)

// MonitorService orchestrates the community monitoring cycle: fetch
// discussions from every source -> analyze for trends -> save the insights
// report.
type MonitorService struct {
	sources []domain.DiscussionSource
	now     func() time.Time
}

// NewMonitorService creates the service over the given discussion sources.
func NewMonitorService(sources []domain.DiscussionSource) *MonitorService {
	return &MonitorService{
		sources: sources,
		now:     time.Now,
	}
}

// SetClock overrides the service clock. Used by tests.
func (s *MonitorService) SetClock(now func() time.Time) { s.now = now }

// MonitorOptions holds the file locations for a single run.
type MonitorOptions struct {
	ReportsDir string
	Verbose    bool
}

// MonitorResult is what a run produced, for the CLI summary.
type MonitorResult struct {
	Discussions []domain.Discussion
	Analysis    domain.DiscussionAnalysis
	ReportPath  string
}

// Run executes the monitoring cycle. A failing source is logged and
// skipped; the report reflects whatever subset succeeded.
func (s *MonitorService) Run(
	ctx context.Context,
	cfg *config.Config,
	opts MonitorOptions,
) (*MonitorResult, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	logger.Info("Starting community monitoring...")

	var discussions []domain.Discussion
	for _, source := range s.sources {
		logger.Infof("Monitoring %s...", source.Name())

		found, err := source.FetchDiscussions(ctx)
		if err != nil {
			logger.Warnf("Source %s failed: %v", source.Name(), err)
			continue
		}
		discussions = append(discussions, found...)
	}

	analysis := s.analyze(discussions, cfg)
	content := s.renderInsights(discussions, analysis)

	reportPath := filepath.Join(
		opts.ReportsDir,
		fmt.Sprintf("community-insights-%s.md", s.now().Format("2006-01-02")),
	)
	if err := reportPkg.Save(content, reportPath); err != nil {
		return nil, fmt.Errorf("failed to save insights report: %w", err)
	}

	logger.Infof(
		"Community monitoring completed: %d discussions found",
		len(discussions),
	)

	return &MonitorResult{
		Discussions: discussions,
		Analysis:    analysis,
		ReportPath:  reportPath,
	}, nil
}

// analyze counts keyword and tracked-tool mentions across all discussions.
func (s *MonitorService) analyze(
	discussions []domain.Discussion,
	cfg *config.Config,
) domain.DiscussionAnalysis {
	keywordCounts := make(map[string]int)
	toolMentions := make(map[string]int)
	sources := make(map[string]bool)
	highRelevance := 0

	trackedNames := cfg.ToolNames(config.CategoryAIFrameworks)

	for _, d := range discussions {
		for _, kw := range d.Keywords {
			keywordCounts[kw]++
		}

		titleLower := strings.ToLower(d.Title)
		for _, name := range trackedNames {
			if strings.Contains(titleLower, strings.ToLower(name)) {
				toolMentions[name]++
			}
		}

		sources[d.Source] = true
		if d.Relevance == domain.RelevanceHigh {
			highRelevance++
		}
	}

	return domain.DiscussionAnalysis{
		TrendingKeywords: topCounts(keywordCounts, maxTrendingKeywords),
		ToolMentions:     topCounts(toolMentions, maxToolMentions),
		TotalDiscussions: len(discussions),
		HighRelevance:    highRelevance,
		SourcesMonitored: len(sources),
	}
}

// topCounts ranks counts descending, ties broken alphabetically so the
// report is stable across runs.
func topCounts(counts map[string]int, limit int) []domain.KeywordCount {
	ranked := make([]domain.KeywordCount, 0, len(counts))
	for kw, count := range counts {
		ranked = append(ranked, domain.KeywordCount{Keyword: kw, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Keyword < ranked[j].Keyword
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// renderInsights builds the community insights report.
func (s *MonitorService) renderInsights(
	discussions []domain.Discussion,
	analysis domain.DiscussionAnalysis,
) string {
	sections := []reportPkg.Section{
		{
			Title: "Summary",
			Items: []string{
				fmt.Sprintf("**Total Discussions Found**: %d", analysis.TotalDiscussions),
				fmt.Sprintf("**High Relevance Discussions**: %d", analysis.HighRelevance),
				fmt.Sprintf("**Sources Monitored**: %d", analysis.SourcesMonitored),
			},
		},
	}

	if len(analysis.TrendingKeywords) > 0 {
		items := make([]string, 0, len(analysis.TrendingKeywords))
		for _, kc := range analysis.TrendingKeywords {
			items = append(items, fmt.Sprintf("**%s**: %d mentions", kc.Keyword, kc.Count))
		}
		sections = append(sections, reportPkg.Section{
			Title: "Trending Keywords",
			Items: items,
		})
	}

	if len(analysis.ToolMentions) > 0 {
		items := make([]string, 0, len(analysis.ToolMentions))
		for _, kc := range analysis.ToolMentions {
			items = append(items, fmt.Sprintf("**%s**: %d mentions", kc.Keyword, kc.Count))
		}
		sections = append(sections, reportPkg.Section{
			Title: "Tool Mentions",
			Items: items,
		})
	}

	if items := highRelevanceItems(discussions); len(items) > 0 {
		sections = append(sections, reportPkg.Section{
			Title: "Recent High-Relevance Discussions",
			Items: items,
		})
	}

	return reportPkg.Render(
		"AI Agent Development Community Insights",
		sections,
		s.now(),
	)
}

func highRelevanceItems(discussions []domain.Discussion) []string {
	var items []string
	for _, d := range discussions {
		if d.Relevance != domain.RelevanceHigh {
			continue
		}
		if len(items) >= maxListedDiscussions {
			break
		}
		items = append(items, fmt.Sprintf(
			"**%s**\n  - Source: %s\n  - URL: %s\n  - Keywords: %s",
			d.Title, d.Source, d.URL, strings.Join(d.Keywords, ", "),
		))
	}
	return items
}
