package cmd

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath string
	readmePath string
	reportsDir string
	watchlist  string
	verbose    bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "toolwatch",
	Short: "Version and community watcher for the AI agent development workstation",
	Long: `A CLI tool that keeps the AI agent development workstation documentation
in sync with the ecosystem.

It tracks the versions of the frameworks and tools listed in the tracking
file against PyPI, npm, GitHub releases, and Homebrew, discovers newly
popular repositories under watched topics, monitors community discussions,
and rewrites the README and tracking state accordingly.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetLevel(logger.DebugLevel)
		} else {
			logger.SetLevel(logger.InfoLevel)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", "config/tools-tracking.json",
		"Path to the tools tracking file",
	)
	rootCmd.PersistentFlags().StringVar(
		&readmePath, "readme", "README.md",
		"Path to the document rewritten with versions and trends",
	)
	rootCmd.PersistentFlags().StringVar(
		&reportsDir, "reports-dir", "reports",
		"Directory for generated Markdown reports",
	)
	rootCmd.PersistentFlags().StringVar(
		&watchlist, "watchlist", "config/watchlist.yaml",
		"Path to the community watchlist (optional)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"Enable verbose output",
	)
}
