package domain

// TrackedTool represents one external framework or package being
// version-monitored. The optional source identifiers map the tool onto the
// resolvers that can answer for it; an empty identifier means the tool is
// not published on that source.
type TrackedTool struct {
	Name            string
	Category        string
	CurrentVersion  string
	Description     string
	Source          string // Repository URL (github.com/{owner}/{repo})
	PyPIPackage     string
	NPMPackage      string
	HomebrewFormula string
	LastUpdated     string // YYYY-MM-DD of the last recorded bump
}

// VersionUpdate is a detected version change for one tracked tool within a
// single run. It is transient: it only survives as report content and as the
// bumped version written back to the tracking file.
type VersionUpdate struct {
	Tool        string
	Category    string
	OldVersion  string
	NewVersion  string
	Description string
}

// TrendingRepo is a newly created repository discovered under a watched
// topic. JSON tags match the `trending_tools` shape persisted in the
// tracking file.
type TrendingRepo struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	Language    string `json:"language"`
	Topic       string `json:"topic"`
	CreatedAt   string `json:"created_at"`
}

// Discussion is a community post found by a discussion source.
type Discussion struct {
	Title     string
	URL       string
	Source    string // e.g. "GitHub - langchain-ai/langchain", "Reddit - r/LocalLLaMA"
	Relevance Relevance
	Keywords  []string
	Score     int    // Community score where the source has one (Reddit)
	CreatedAt string // RFC 3339 where the source provides it
}

// DiscussionAnalysis summarizes one monitoring run across all sources.
type DiscussionAnalysis struct {
	TrendingKeywords []KeywordCount
	ToolMentions     []KeywordCount
	TotalDiscussions int
	HighRelevance    int
	SourcesMonitored int
}

// KeywordCount pairs a keyword (or tool name) with its mention count.
type KeywordCount struct {
	Keyword string
	Count   int
}
