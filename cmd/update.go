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
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check tracked tools for new versions and refresh the docs",
	Long: `Resolve the latest version of every tracked tool against Homebrew,
PyPI, npm, and GitHub releases, scan the watched GitHub topics for newly
popular repositories, then persist the tracking file and rewrite the README.`,
	RunE: runUpdate,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	service, err := injectUpdateService()
	if err != nil {
		return fmt.Errorf("failed to build update service: %w", err)
	}

	fmt.Println("🔍 Checking for tool updates...")

	result, err := service.Run(context.Background(), cfg, application.UpdateOptions{
		ConfigPath: configPath,
		ReadmePath: readmePath,
		Verbose:    verbose,
	})
	if err != nil {
		return err
	}

	printUpdateSummary(result)
	return nil
}

func printUpdateSummary(result *application.UpdateResult) {
	bold := color.New(color.Bold)

	if len(result.Updates) == 0 {
		color.Green("✅ All tracked tools are up to date")
	} else {
		_, _ = bold.Printf("📦 %d update(s) found:\n", len(result.Updates))
		for _, update := range result.Updates {
			fmt.Printf("   └─ %s: %s -> %s\n",
				update.Tool,
				color.RedString(update.OldVersion),
				color.GreenString(update.NewVersion),
			)
		}
	}

	if len(result.Trending) > 0 {
		_, _ = bold.Printf("🔥 %d trending repositories discovered\n", len(result.Trending))
	}

	fmt.Println()
	fmt.Println(result.Summary)
}
