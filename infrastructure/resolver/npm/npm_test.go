package npm_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnsirmon/ai-dev-workstation-mac/infrastructure/resolver/npm"
	"github.com/johnsirmon/ai-dev-workstation-mac/test/domain/entitybuilders"
)

func TestIdentifier(t *testing.T) {
	t.Parallel()

	t.Run("should use the npm package locator", func(t *testing.T) {
		t.Parallel()

		// given
		resolver := npm.New()
		tool := entitybuilders.NewTrackedToolBuilder().
			WithNPMPackage("@anthropic-ai/claude-code").
			BuildTrackedTool()

		// when
		id := resolver.Identifier(tool)

		// then
		assert.Equal(t, "@anthropic-ai/claude-code", id)
	})

	t.Run("should skip tools without an npm package", func(t *testing.T) {
		t.Parallel()

		// given
		resolver := npm.New()
		tool := entitybuilders.NewTrackedToolBuilder().BuildTrackedTool()

		// when
		id := resolver.Identifier(tool)

		// then
		assert.Empty(t, id)
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("should return the latest dist-tag", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/typescript", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"dist-tags": {"latest": "5.6.2", "beta": "5.7.0-beta"}}`))
			},
		))
		defer server.Close()
		resolver := &npm.Resolver{BaseURL: server.URL, Client: server.Client()}

		// when
		version, err := resolver.Resolve(context.Background(), "typescript")

		// then
		require.NoError(t, err)
		assert.Equal(t, "5.6.2", version)
	})

	t.Run("should fail on a non-200 status", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		))
		defer server.Close()
		resolver := &npm.Resolver{BaseURL: server.URL, Client: server.Client()}

		// when
		_, err := resolver.Resolve(context.Background(), "typescript")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("should fail when the latest tag is missing", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"dist-tags": {}}`))
			},
		))
		defer server.Close()
		resolver := &npm.Resolver{BaseURL: server.URL, Client: server.Client()}

		// when
		_, err := resolver.Resolve(context.Background(), "typescript")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no latest tag")
	})
}
