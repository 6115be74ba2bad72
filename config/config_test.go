package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnsirmon/ai-dev-workstation-mac/config"
	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
)

const validTracking = `{
  "tracked_tools": {
    "ai_frameworks": {
      "AutoGen": {
        "current_version": "0.4.0",
        "description": "Multi-agent framework",
        "source": "https://github.com/microsoft/autogen",
        "pypi_package": "autogen-agentchat"
      },
      "LangChain": {
        "current_version": "0.3.0",
        "description": "LLM application framework",
        "pypi_package": "langchain"
      }
    },
    "development_tools": {
      "GitHub CLI": {
        "current_version": "2.40.0",
        "description": "GitHub on the command line",
        "homebrew_formula": "gh"
      }
    }
  },
  "monitoring_sources": {
    "github_topics": ["ai-agents", "llm"]
  }
}`

func writeTracking(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tools-tracking.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("should load a valid tracking file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTracking(t, validTracking)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Len(t, cfg.TrackedTools, 2)
		assert.Equal(t, "0.4.0", cfg.TrackedTools["ai_frameworks"]["AutoGen"].CurrentVersion)
		assert.Equal(t, []string{"ai-agents", "llm"}, cfg.MonitoringSources.GitHubTopics)
	})

	t.Run("should fail when the file is missing", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "nope.json")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read tracking file")
	})

	t.Run("should fail on malformed JSON", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTracking(t, "{not json")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON")
	})

	t.Run("should fail when no categories are tracked", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTracking(t, `{"tracked_tools": {}}`)

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one category")
	})

	t.Run("should fail when a tool has no current_version", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTracking(t, `{
			"tracked_tools": {
				"ai_frameworks": {
					"Broken": {"description": "no version", "pypi_package": "broken"}
				}
			}
		}`)

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "current_version is required")
	})

	t.Run("should fail when a tool has no locator", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTracking(t, `{
			"tracked_tools": {
				"ai_frameworks": {
					"Nowhere": {"current_version": "1.0.0", "description": "unlocatable"}
				}
			}
		}`)

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one of source")
	})
}

func TestSave(t *testing.T) {
	t.Parallel()

	t.Run("should write indented JSON that loads back identically", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTracking(t, validTracking)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		cfg.LastUpdateCheck = "2026-08-25"

		// when
		out := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, config.Save(cfg, out))

		// then
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(string(data), "\n"))
		assert.Contains(t, string(data), "  \"tracked_tools\"")

		reloaded, err := config.Load(out)
		require.NoError(t, err)
		assert.Equal(t, cfg, reloaded)
	})
}

func TestTools(t *testing.T) {
	t.Parallel()

	t.Run("should flatten categories in deterministic order", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTracking(t, validTracking)
		cfg, err := config.Load(path)
		require.NoError(t, err)

		// when
		tools := cfg.Tools()

		// then
		require.Len(t, tools, 3)
		assert.Equal(t, "AutoGen", tools[0].Name)
		assert.Equal(t, "LangChain", tools[1].Name)
		assert.Equal(t, "GitHub CLI", tools[2].Name)
		assert.Equal(t, "ai_frameworks", tools[0].Category)
		assert.Equal(t, "development_tools", tools[2].Category)
	})
}

func TestToolNames(t *testing.T) {
	t.Parallel()

	t.Run("should return sorted names of one category", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTracking(t, validTracking)
		cfg, err := config.Load(path)
		require.NoError(t, err)

		// when
		names := cfg.ToolNames(config.CategoryAIFrameworks)

		// then
		assert.Equal(t, []string{"AutoGen", "LangChain"}, names)
	})

	t.Run("should return nil for an unknown category", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTracking(t, validTracking)
		cfg, err := config.Load(path)
		require.NoError(t, err)

		// when
		names := cfg.ToolNames("not_a_category")

		// then
		assert.Nil(t, names)
	})
}

func TestWithUpdates(t *testing.T) {
	t.Parallel()

	t.Run("should bump version and stamp date without mutating the receiver", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTracking(t, validTracking)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		updates := []domain.VersionUpdate{{
			Tool:       "AutoGen",
			Category:   "ai_frameworks",
			OldVersion: "0.4.0",
			NewVersion: "0.5.0",
		}}

		// when
		next := cfg.WithUpdates(updates, "2026-08-25")

		// then
		assert.Equal(t, "0.5.0", next.TrackedTools["ai_frameworks"]["AutoGen"].CurrentVersion)
		assert.Equal(t, "2026-08-25", next.TrackedTools["ai_frameworks"]["AutoGen"].LastUpdated)
		assert.Equal(t, "0.4.0", cfg.TrackedTools["ai_frameworks"]["AutoGen"].CurrentVersion)
		assert.Empty(t, cfg.TrackedTools["ai_frameworks"]["AutoGen"].LastUpdated)
	})

	t.Run("should leave untouched tools unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTracking(t, validTracking)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		updates := []domain.VersionUpdate{{
			Tool:       "AutoGen",
			Category:   "ai_frameworks",
			NewVersion: "0.5.0",
		}}

		// when
		next := cfg.WithUpdates(updates, "2026-08-25")

		// then
		assert.Equal(t, "0.3.0", next.TrackedTools["ai_frameworks"]["LangChain"].CurrentVersion)
		assert.Equal(t, "2.40.0", next.TrackedTools["development_tools"]["GitHub CLI"].CurrentVersion)
	})

	t.Run("should ignore updates for unknown tools", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTracking(t, validTracking)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		updates := []domain.VersionUpdate{{
			Tool:       "Ghost",
			Category:   "ai_frameworks",
			NewVersion: "9.9.9",
		}}

		// when
		next := cfg.WithUpdates(updates, "2026-08-25")

		// then
		assert.Equal(t, cfg.TrackedTools, next.TrackedTools)
	})
}
