// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"
	"time"

	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
)

// ---------------------------------------------------------------------------
// SpyResolver
// ---------------------------------------------------------------------------

// SpyResolver implements domain.Resolver as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpyResolver struct {
	// --- identity ---
	ResolverName string

	// --- Identifier ---
	// IdentifierFunc overrides the default (tool name) when set.
	IdentifierFunc func(tool domain.TrackedTool) string

	// --- Resolve ---
	Version    string
	ResolveErr error
	// spy: identifiers that were requested
	ResolvedIDs []string
}

var _ domain.Resolver = (*SpyResolver)(nil)

func (r *SpyResolver) Name() string { return r.ResolverName }

func (r *SpyResolver) Identifier(tool domain.TrackedTool) string {
	if r.IdentifierFunc != nil {
		return r.IdentifierFunc(tool)
	}
	return tool.Name
}

func (r *SpyResolver) Resolve(_ context.Context, id string) (string, error) {
	r.ResolvedIDs = append(r.ResolvedIDs, id)
	return r.Version, r.ResolveErr
}

// ---------------------------------------------------------------------------
// SpyScanner
// ---------------------------------------------------------------------------

// SpyScanner implements domain.TrendScanner as a configurable spy.
type SpyScanner struct {
	// --- Scan ---
	Repos   []domain.TrendingRepo
	ScanErr error
	// spy: topic lists that were requested
	ScannedTopics [][]string
}

var _ domain.TrendScanner = (*SpyScanner)(nil)

func (s *SpyScanner) Scan(_ context.Context, topics []string) ([]domain.TrendingRepo, error) {
	s.ScannedTopics = append(s.ScannedTopics, topics)
	return s.Repos, s.ScanErr
}

// ---------------------------------------------------------------------------
// SpySource
// ---------------------------------------------------------------------------

// SpySource implements domain.DiscussionSource as a configurable spy.
type SpySource struct {
	// --- identity ---
	SourceName string

	// --- FetchDiscussions ---
	Discussions []domain.Discussion
	FetchErr    error
	// spy: number of fetches performed
	FetchCalls int
}

var _ domain.DiscussionSource = (*SpySource)(nil)

func (s *SpySource) Name() string { return s.SourceName }

func (s *SpySource) FetchDiscussions(_ context.Context) ([]domain.Discussion, error) {
	s.FetchCalls++
	return s.Discussions, s.FetchErr
}

// ---------------------------------------------------------------------------
// SpyEditor
// ---------------------------------------------------------------------------

// SpyEditor implements domain.DocumentEditor as a pass-through spy: it
// returns the content unchanged and records what it was asked to do.
type SpyEditor struct {
	// spy: inputs received
	VersionTableUpdates [][]domain.VersionUpdate
	TrendingRepos       [][]domain.TrendingRepo
	StampedDates        []time.Time
}

var _ domain.DocumentEditor = (*SpyEditor)(nil)

func (e *SpyEditor) UpdateVersionTable(
	content string,
	updates []domain.VersionUpdate,
	_ time.Time,
) string {
	e.VersionTableUpdates = append(e.VersionTableUpdates, updates)
	return content
}

func (e *SpyEditor) UpsertTrendingSection(
	content string,
	repos []domain.TrendingRepo,
) string {
	e.TrendingRepos = append(e.TrendingRepos, repos)
	return content
}

func (e *SpyEditor) StampGeneratedDate(content string, now time.Time) string {
	e.StampedDates = append(e.StampedDates, now)
	return content
}

// ---------------------------------------------------------------------------
// DummyResolver — satisfies the interface but does nothing (for compile checks)
// ---------------------------------------------------------------------------

// DummyResolver is a no-op implementation of domain.Resolver.
// Use it only for interface compliance tests or as a placeholder.
type DummyResolver struct{}

var _ domain.Resolver = (*DummyResolver)(nil)

func (d *DummyResolver) Name() string                           { return "dummy" }
func (d *DummyResolver) Identifier(_ domain.TrackedTool) string { return "" }

func (d *DummyResolver) Resolve(_ context.Context, _ string) (string, error) {
	return "", nil
}

// ---------------------------------------------------------------------------
// DummySource — satisfies the interface but does nothing
// ---------------------------------------------------------------------------

// DummySource is a no-op implementation of domain.DiscussionSource.
type DummySource struct{}

var _ domain.DiscussionSource = (*DummySource)(nil)

func (d *DummySource) Name() string { return "dummy" }

func (d *DummySource) FetchDiscussions(_ context.Context) ([]domain.Discussion, error) {
	return nil, nil
}
