package forum_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
	"github.com/johnsirmon/ai-dev-workstation-mac/infrastructure/forum"
)

func redditListing(posts ...string) string {
	children := ""
	for i, p := range posts {
		if i > 0 {
			children += ","
		}
		children += `{"data": ` + p + `}`
	}
	return `{"data": {"children": [` + children + `]}}`
}

func TestRedditFetch(t *testing.T) {
	t.Parallel()

	t.Run("should keep only keyword-matching posts", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/r/LocalLLaMA/hot.json", r.URL.Path)
				assert.Equal(t, "10", r.URL.Query().Get("limit"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(redditListing(
					`{"title": "Best local LLM for coding", "permalink": "/r/LocalLLaMA/comments/a1/", "score": 321}`,
					`{"title": "Weekly off-topic thread", "permalink": "/r/LocalLLaMA/comments/a2/", "score": 12}`,
				)))
			},
		))
		defer server.Close()
		source := forum.NewRedditForTest(
			testWatchlist("acme/agents"), server.URL, server.Client(),
		)

		// when
		discussions, err := source.FetchDiscussions(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, discussions, 1)
		assert.Equal(t, "Best local LLM for coding", discussions[0].Title)
		assert.Equal(t, "Reddit - r/LocalLLaMA", discussions[0].Source)
		assert.Equal(t, 321, discussions[0].Score)
		assert.Equal(t, []string{"llm"}, discussions[0].Keywords)
	})

	t.Run("should link posts to the public reddit site", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(redditListing(
					`{"title": "agent swarm demo", "permalink": "/r/LocalLLaMA/comments/b9/", "score": 77}`,
				)))
			},
		))
		defer server.Close()
		source := forum.NewRedditForTest(
			testWatchlist("acme/agents"), server.URL, server.Client(),
		)

		// when
		discussions, err := source.FetchDiscussions(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, discussions, 1)
		assert.Equal(t,
			"https://www.reddit.com/r/LocalLLaMA/comments/b9/",
			discussions[0].URL,
		)
		assert.Equal(t, domain.RelevanceHigh, discussions[0].Relevance)
	})

	t.Run("should continue after a throttled subreddit", func(t *testing.T) {
		t.Parallel()

		// given
		wl := testWatchlist("acme/agents")
		wl.Subreddits = []string{"Blocked", "LocalLLaMA"}
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/r/Blocked/hot.json" {
					w.WriteHeader(http.StatusTooManyRequests)
					return
				}
				_, _ = w.Write([]byte(redditListing(
					`{"title": "autogen tips", "permalink": "/r/LocalLLaMA/comments/c3/", "score": 42}`,
				)))
			},
		))
		defer server.Close()
		source := forum.NewRedditForTest(wl, server.URL, server.Client())

		// when
		discussions, err := source.FetchDiscussions(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, discussions, 1)
		assert.Equal(t, "autogen tips", discussions[0].Title)
	})

	t.Run("should fail a subreddit on malformed JSON but not the run", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("<html>blocked</html>"))
			},
		))
		defer server.Close()
		source := forum.NewRedditForTest(
			testWatchlist("acme/agents"), server.URL, server.Client(),
		)

		// when
		discussions, err := source.FetchDiscussions(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, discussions)
	})
}
