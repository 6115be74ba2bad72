package domain

import "context"

// Resolver abstracts one upstream version source (PyPI, npm, GitHub
// releases, Homebrew). Each implementation maps a source-specific
// identifier to the latest published version string.
//
// A resolver makes exactly one attempt per call: a transport, parse, or
// timeout fault is returned as an error and treated by the caller as
// "unknown", never retried within the run.
type Resolver interface {
	// Name returns the resolver identifier (e.g. "pypi", "homebrew").
	Name() string

	// Identifier extracts this resolver's identifier from a tracked tool.
	// An empty string means the tool is not published on this source and
	// the resolver must be skipped.
	Identifier(tool TrackedTool) string

	// Resolve returns the latest version published for the identifier.
	Resolve(ctx context.Context, id string) (string, error)
}

// TrendScanner discovers newly created repositories under watched topics,
// already filtered by the popularity threshold.
type TrendScanner interface {
	Scan(ctx context.Context, topics []string) ([]TrendingRepo, error)
}
