package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
)

const (
	trendingHeader  = "## Trending Tools to Investigate"
	trendingMaxRows = 10
	descMaxLen      = 100
)

// generatedPattern matches the README's "Generated <date> –" marker.
var generatedPattern = regexp.MustCompile(`Generated.*?–`)

// Editor implements domain.DocumentEditor with regex and index-based text
// substitution. Every rewrite is best-effort: when a pattern does not match
// the document is returned unchanged.
type Editor struct{}

// NewEditor creates the README editor.
func NewEditor() domain.DocumentEditor {
	return &Editor{}
}

// UpdateVersionTable rewrites the version cell of each updated tool's table
// row. Rows are keyed `**name**|version|`; the match is case-insensitive
// and all other rows are left untouched.
func (e *Editor) UpdateVersionTable(
	content string,
	updates []domain.VersionUpdate,
	now time.Time,
) string {
	for _, update := range updates {
		pattern := regexp.MustCompile(
			`(?i)(\*\*` + regexp.QuoteMeta(update.Tool) + `\*\*\|)([^|]+)(\|)`,
		)
		replacement := fmt.Sprintf(
			"${1}%s (Updated %s)${3}",
			update.NewVersion, now.Format("2006-01-02"),
		)
		content = pattern.ReplaceAllString(content, replacement)
	}
	return content
}

// UpsertTrendingSection replaces the trending-tools section in place, or
// appends it after a horizontal rule when the document has none yet.
func (e *Editor) UpsertTrendingSection(content string, repos []domain.TrendingRepo) string {
	if len(repos) == 0 {
		return content
	}

	section := renderTrendingSection(repos)

	start := strings.Index(content, trendingHeader)
	if start < 0 {
		return content + "\n\n---\n\n" + section
	}

	end := sectionEnd(content, start+len(trendingHeader))
	return content[:start] + section + content[end:]
}

// sectionEnd finds where the existing trending section stops: the next
// horizontal rule or heading, or the end of the document.
func sectionEnd(content string, from int) int {
	rest := content[from:]
	end := len(content)
	for _, boundary := range []string{"\n\n---", "\n\n##"} {
		if idx := strings.Index(rest, boundary); idx >= 0 && from+idx < end {
			end = from + idx
		}
	}
	return end
}

func renderTrendingSection(repos []domain.TrendingRepo) string {
	var sb strings.Builder
	sb.WriteString(trendingHeader + "\n\n")
	sb.WriteString("| Tool | Stars | Language | Use Case | Repository |\n")
	sb.WriteString("|------|-------|----------|----------|------------|\n")

	for i, repo := range repos {
		if i >= trendingMaxRows {
			break
		}
		language := repo.Language
		if language == "" {
			language = "N/A"
		}
		sb.WriteString(fmt.Sprintf(
			"|**%s**|%d|%s|%s|[GitHub](%s)|\n",
			repo.Name, repo.Stars, language, truncate(repo.Description, descMaxLen), repo.URL,
		))
	}

	return strings.TrimRight(sb.String(), "\n")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// StampGeneratedDate rewrites the "Generated <date> –" marker with the
// current date.
func (e *Editor) StampGeneratedDate(content string, now time.Time) string {
	stamp := "Generated " + now.Format("January 2, 2006") + " –"
	return generatedPattern.ReplaceAllString(content, stamp)
}
