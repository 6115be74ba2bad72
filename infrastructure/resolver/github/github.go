package github

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
)

const resolverName = "github"

// repoPattern extracts "owner/repo" from a repository URL.
var repoPattern = regexp.MustCompile(`github\.com/([^/]+)/([^/\s]+)`)

// Resolver implements domain.Resolver over the GitHub releases API.
type Resolver struct {
	client *gh.Client
}

// New creates a GitHub releases resolver backed by the given client.
func New(client *gh.Client) domain.Resolver {
	return &Resolver{client: client}
}

func (r *Resolver) Name() string { return resolverName }

// Identifier maps a tool's source URL to an "owner/repo" pair. Tools with
// no GitHub source (or an unparseable URL) are skipped.
func (r *Resolver) Identifier(tool domain.TrackedTool) string {
	matches := repoPattern.FindStringSubmatch(tool.Source)
	if len(matches) < 3 {
		return ""
	}
	repo := strings.TrimSuffix(matches[2], ".git")
	return matches[1] + "/" + repo
}

// Resolve returns the tag of the latest published release, with any leading
// "v" stripped to match the versions stored in the tracking file.
func (r *Resolver) Resolve(ctx context.Context, id string) (string, error) {
	owner, repo, ok := strings.Cut(id, "/")
	if !ok {
		return "", fmt.Errorf("invalid repository identifier %q", id)
	}

	release, _, err := r.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release of %s: %w", id, err)
	}

	tag := release.GetTagName()
	if tag == "" {
		return "", fmt.Errorf("latest release of %s has no tag", id)
	}

	return strings.TrimPrefix(tag, "v"), nil
}
