// Package report renders Markdown reports and rewrites the project README.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
)

// Section is one titled block of a report: free-form content, a bulleted
// list, or both.
type Section struct {
	Title   string
	Content string
	Items   []string
}

// Render builds a Markdown document from ordered sections. A report with no
// sections is still well formed: title plus generation timestamp.
func Render(title string, sections []Section, now time.Time) string {
	var sb strings.Builder
	sb.WriteString("# " + title + "\n")
	sb.WriteString(fmt.Sprintf("*Generated: %s*\n\n", now.Format("2006-01-02 15:04:05")))

	for _, section := range sections {
		sb.WriteString("## " + section.Title + "\n")
		if section.Content != "" {
			sb.WriteString(section.Content + "\n")
		}
		for _, item := range section.Items {
			sb.WriteString("- " + item + "\n")
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// Save writes a report, creating parent directories as needed.
func Save(content, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write report %q: %w", path, err)
	}
	logger.Infof("Report saved to %s", path)
	return nil
}
