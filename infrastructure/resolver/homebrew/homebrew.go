package homebrew

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
)

const (
	resolverName = "homebrew"
	queryTimeout = 10 * time.Second
)

// Resolver implements domain.Resolver by asking the local brew binary.
// This is the only resolver that is not an HTTP call: the formula metadata
// lives in the local package-manager installation.
type Resolver struct {
	// brewPath overrides the binary looked up on PATH. Tests point it at a
	// fake script.
	brewPath string
}

// New creates a Homebrew resolver using `brew` from PATH.
func New() domain.Resolver {
	return &Resolver{brewPath: "brew"}
}

// NewWithBinary creates a resolver invoking the given binary. Used by tests.
func NewWithBinary(path string) domain.Resolver {
	return &Resolver{brewPath: path}
}

func (r *Resolver) Name() string { return resolverName }

func (r *Resolver) Identifier(tool domain.TrackedTool) string {
	return tool.HomebrewFormula
}

// Resolve runs `brew info --json <formula>` and returns the stable version.
func (r *Resolver) Resolve(ctx context.Context, formula string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.brewPath, "info", formula, "--json")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("brew info %s: %w", formula, err)
	}

	return parseFormulaInfo(output, formula)
}

// parseFormulaInfo extracts the stable version from brew's JSON output,
// which is an array with one object per formula.
func parseFormulaInfo(output []byte, formula string) (string, error) {
	var formulas []struct {
		Versions struct {
			Stable string `json:"stable"`
		} `json:"versions"`
	}
	if err := json.Unmarshal(output, &formulas); err != nil {
		return "", fmt.Errorf("invalid brew output for %q: %w", formula, err)
	}
	if len(formulas) == 0 {
		return "", fmt.Errorf("brew returned no formula for %q", formula)
	}
	if formulas[0].Versions.Stable == "" {
		return "", fmt.Errorf("formula %q has no stable version", formula)
	}
	return formulas[0].Versions.Stable, nil
}
