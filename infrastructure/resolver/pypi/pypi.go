package pypi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
)

const (
	resolverName   = "pypi"
	defaultBaseURL = "https://pypi.org"
	requestTimeout = 10 * time.Second
)

// Resolver implements domain.Resolver against the PyPI JSON API.
type Resolver struct {
	BaseURL string
	Client  *http.Client
}

// New creates a PyPI resolver with the production endpoint.
func New() domain.Resolver {
	return &Resolver{
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: requestTimeout},
	}
}

func (r *Resolver) Name() string { return resolverName }

func (r *Resolver) Identifier(tool domain.TrackedTool) string {
	return tool.PyPIPackage
}

// Resolve returns the latest version of a PyPI package.
func (r *Resolver) Resolve(ctx context.Context, pkg string) (string, error) {
	url := fmt.Sprintf("%s/pypi/%s/json", r.BaseURL, pkg)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "ai-dev-workstation/1.0")

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("pypi request for %q failed: %w", pkg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pypi returned status %d for %q", resp.StatusCode, pkg)
	}

	var payload struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return "", fmt.Errorf("invalid pypi response for %q: %w", pkg, decodeErr)
	}
	if payload.Info.Version == "" {
		return "", fmt.Errorf("pypi response for %q has no version", pkg)
	}

	return payload.Info.Version, nil
}
