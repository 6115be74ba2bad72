package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/johnsirmon/ai-dev-workstation-mac/domain"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// TrackedToolBuilder helps create test tracked tools with a fluent interface.
type TrackedToolBuilder struct {
	*testkit.BaseBuilder
	name            string
	category        string
	currentVersion  string
	description     string
	source          string
	pypiPackage     string
	npmPackage      string
	homebrewFormula string
}

// NewTrackedToolBuilder creates a new tracked tool builder with sensible defaults.
func NewTrackedToolBuilder() *TrackedToolBuilder {
	return &TrackedToolBuilder{
		BaseBuilder:    testkit.NewBaseBuilder(),
		name:           "test-tool",
		category:       "ai_frameworks",
		currentVersion: "1.0.0",
		description:    "A test tool",
		source:         "https://github.com/test/tool",
	}
}

// WithName sets the tool name.
func (b *TrackedToolBuilder) WithName(name string) *TrackedToolBuilder {
	b.name = name
	return b
}

// WithCategory sets the tracking category.
func (b *TrackedToolBuilder) WithCategory(category string) *TrackedToolBuilder {
	b.category = category
	return b
}

// WithCurrentVersion sets the stored version.
func (b *TrackedToolBuilder) WithCurrentVersion(version string) *TrackedToolBuilder {
	b.currentVersion = version
	return b
}

// WithDescription sets the tool description.
func (b *TrackedToolBuilder) WithDescription(description string) *TrackedToolBuilder {
	b.description = description
	return b
}

// WithSource sets the source URL.
func (b *TrackedToolBuilder) WithSource(source string) *TrackedToolBuilder {
	b.source = source
	return b
}

// WithPyPIPackage sets the PyPI package locator.
func (b *TrackedToolBuilder) WithPyPIPackage(pkg string) *TrackedToolBuilder {
	b.pypiPackage = pkg
	return b
}

// WithNPMPackage sets the npm package locator.
func (b *TrackedToolBuilder) WithNPMPackage(pkg string) *TrackedToolBuilder {
	b.npmPackage = pkg
	return b
}

// WithHomebrewFormula sets the Homebrew formula locator.
func (b *TrackedToolBuilder) WithHomebrewFormula(formula string) *TrackedToolBuilder {
	b.homebrewFormula = formula
	return b
}

// Build creates the tracked tool (satisfies testkit.Builder interface).
func (b *TrackedToolBuilder) Build() interface{} {
	return b.BuildTrackedTool()
}

// BuildTrackedTool creates the tracked tool with a concrete return type.
func (b *TrackedToolBuilder) BuildTrackedTool() domain.TrackedTool {
	return domain.TrackedTool{
		Name:            b.name,
		Category:        b.category,
		CurrentVersion:  b.currentVersion,
		Description:     b.description,
		Source:          b.source,
		PyPIPackage:     b.pypiPackage,
		NPMPackage:      b.npmPackage,
		HomebrewFormula: b.homebrewFormula,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *TrackedToolBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-tool"
	b.category = "ai_frameworks"
	b.currentVersion = "1.0.0"
	b.description = "A test tool"
	b.source = "https://github.com/test/tool"
	b.pypiPackage = ""
	b.npmPackage = ""
	b.homebrewFormula = ""
	return b
}

// Clone creates a deep copy of the TrackedToolBuilder.
func (b *TrackedToolBuilder) Clone() testkit.Builder {
	return &TrackedToolBuilder{
		BaseBuilder:     b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:            b.name,
		category:        b.category,
		currentVersion:  b.currentVersion,
		description:     b.description,
		source:          b.source,
		pypiPackage:     b.pypiPackage,
		npmPackage:      b.npmPackage,
		homebrewFormula: b.homebrewFormula,
	}
}
