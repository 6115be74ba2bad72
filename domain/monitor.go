package domain

import "context"

// DiscussionSource abstracts one community being monitored (GitHub
// discussions of watched repositories, Reddit subreddits).
//
// Fetching is best-effort: a source returns whatever it could collect and
// an error only when it produced nothing at all. The caller logs and moves
// on; one dark source never fails the run.
type DiscussionSource interface {
	// Name returns the source identifier (e.g. "github-discussions", "reddit").
	Name() string

	// FetchDiscussions collects recent posts from the source.
	FetchDiscussions(ctx context.Context) ([]Discussion, error)
}
