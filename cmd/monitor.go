package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/johnsirmon/ai-dev-workstation-mac/application"
	"github.com/johnsirmon/ai-dev-workstation-mac/config"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Monitor community discussions about tracked tools",
	Long: `Fetch recent discussions from the watched GitHub repositories and
subreddits, rank trending keywords and tracked-tool mentions, and save a
community insights report.`,
	RunE: runMonitor,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	service, err := injectMonitorService()
	if err != nil {
		return fmt.Errorf("failed to build monitor service: %w", err)
	}

	fmt.Println("👂 Monitoring community discussions...")

	result, err := service.Run(context.Background(), cfg, application.MonitorOptions{
		ReportsDir: reportsDir,
		Verbose:    verbose,
	})
	if err != nil {
		return err
	}

	printMonitorSummary(result)
	return nil
}

func printMonitorSummary(result *application.MonitorResult) {
	bold := color.New(color.Bold)

	_, _ = bold.Printf("💬 %d discussion(s) found across %d source(s)\n",
		result.Analysis.TotalDiscussions,
		result.Analysis.SourcesMonitored,
	)
	if result.Analysis.HighRelevance > 0 {
		fmt.Printf("   └─ %s high relevance\n",
			color.YellowString("%d", result.Analysis.HighRelevance),
		)
	}
	for _, kc := range result.Analysis.TrendingKeywords {
		fmt.Printf("   └─ %s: %d mentions\n", kc.Keyword, kc.Count)
	}

	color.Green("✅ Report saved to %s", result.ReportPath)
}
