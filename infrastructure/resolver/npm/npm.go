package npm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
)

const (
	resolverName   = "npm"
	defaultBaseURL = "https://registry.npmjs.org"
	requestTimeout = 10 * time.Second
)

// Resolver implements domain.Resolver against the npm registry.
type Resolver struct {
	BaseURL string
	Client  *http.Client
}

// New creates an npm resolver with the production endpoint.
func New() domain.Resolver {
	return &Resolver{
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: requestTimeout},
	}
}

func (r *Resolver) Name() string { return resolverName }

func (r *Resolver) Identifier(tool domain.TrackedTool) string {
	return tool.NPMPackage
}

// Resolve returns the "latest" dist-tag of an npm package.
func (r *Resolver) Resolve(ctx context.Context, pkg string) (string, error) {
	url := fmt.Sprintf("%s/%s", r.BaseURL, pkg)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "ai-dev-workstation/1.0")

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("npm request for %q failed: %w", pkg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("npm returned status %d for %q", resp.StatusCode, pkg)
	}

	var payload struct {
		DistTags struct {
			Latest string `json:"latest"`
		} `json:"dist-tags"`
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return "", fmt.Errorf("invalid npm response for %q: %w", pkg, decodeErr)
	}
	if payload.DistTags.Latest == "" {
		return "", fmt.Errorf("npm response for %q has no latest tag", pkg)
	}

	return payload.DistTags.Latest, nil
}
