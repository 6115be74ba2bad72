package homebrew //nolint:testpackage // tests unexported functions

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnsirmon/ai-dev-workstation-mac/test/domain/entitybuilders"
)

func TestIdentifier(t *testing.T) {
	t.Parallel()

	t.Run("should use the homebrew formula locator", func(t *testing.T) {
		t.Parallel()

		// given
		resolver := New()
		tool := entitybuilders.NewTrackedToolBuilder().
			WithHomebrewFormula("gh").
			BuildTrackedTool()

		// when
		id := resolver.Identifier(tool)

		// then
		assert.Equal(t, "gh", id)
	})

	t.Run("should skip tools without a formula", func(t *testing.T) {
		t.Parallel()

		// given
		resolver := New()
		tool := entitybuilders.NewTrackedToolBuilder().BuildTrackedTool()

		// when
		id := resolver.Identifier(tool)

		// then
		assert.Empty(t, id)
	})
}

func TestParseFormulaInfo(t *testing.T) {
	t.Parallel()

	t.Run("should extract the stable version", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte(`[{"name": "gh", "versions": {"stable": "2.40.0", "head": "HEAD"}}]`)

		// when
		version, err := parseFormulaInfo(output, "gh")

		// then
		require.NoError(t, err)
		assert.Equal(t, "2.40.0", version)
	})

	t.Run("should use the first formula when brew returns several", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte(`[
			{"versions": {"stable": "1.0.0"}},
			{"versions": {"stable": "2.0.0"}}
		]`)

		// when
		version, err := parseFormulaInfo(output, "multi")

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", version)
	})

	t.Run("should fail on malformed output", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte("Error: No formulae found")

		// when
		_, err := parseFormulaInfo(output, "ghost")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid brew output")
	})

	t.Run("should fail on an empty formula list", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte("[]")

		// when
		_, err := parseFormulaInfo(output, "ghost")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no formula")
	})

	t.Run("should fail when the formula has no stable version", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte(`[{"versions": {"head": "HEAD"}}]`)

		// when
		_, err := parseFormulaInfo(output, "head-only")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no stable version")
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("should run the brew binary and parse its output", func(t *testing.T) {
		t.Parallel()

		// given
		fakeBrew := writeFakeBrew(t, `#!/bin/sh
echo '[{"versions": {"stable": "2.40.0"}}]'
`)
		resolver := NewWithBinary(fakeBrew)

		// when
		version, err := resolver.Resolve(context.Background(), "gh")

		// then
		require.NoError(t, err)
		assert.Equal(t, "2.40.0", version)
	})

	t.Run("should fail when the binary exits non-zero", func(t *testing.T) {
		t.Parallel()

		// given
		fakeBrew := writeFakeBrew(t, `#!/bin/sh
exit 1
`)
		resolver := NewWithBinary(fakeBrew)

		// when
		_, err := resolver.Resolve(context.Background(), "ghost")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "brew info ghost")
	})
}

func writeFakeBrew(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brew")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}
