package domain

import "time"

// DocumentEditor rewrites fixed sections of a Markdown document through
// best-effort text substitution. No structural validation is performed: a
// pattern that does not match leaves the document unchanged.
//
// The interface isolates the substitution strategy so a future
// structured-document writer can replace it without touching the detection
// logic.
type DocumentEditor interface {
	// UpdateVersionTable replaces the version cell of each tool's table row
	// (rows keyed `**name**|version|`) for the given updates.
	UpdateVersionTable(content string, updates []VersionUpdate, now time.Time) string

	// UpsertTrendingSection replaces the trending-tools section if present,
	// otherwise appends it. A nil or empty repo list leaves the document
	// unchanged.
	UpsertTrendingSection(content string, repos []TrendingRepo) string

	// StampGeneratedDate rewrites the "Generated <date> –" marker with the
	// current date.
	StampGeneratedDate(content string, now time.Time) string
}
