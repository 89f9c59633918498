package defs

// Common file names used across the project.
const (
	// ConfigYAML is the rulecat project configuration file.
	ConfigYAML = "rulecat.yaml"

	// ManifestYAML is the explicit fragment ordering file.
	ManifestYAML = "fragments.yaml"

	// CursorRules is the editor assistant context file produced by a build.
	CursorRules = ".cursorrules"
)

// Directory names of the documentation layout.
const (
	// DocsDir is the documentation site root under the project root.
	DocsDir = "docs"

	// PartsDir holds the numbered fragments under DocsDir.
	PartsDir = "parts"
)

// Environment variables read by rulecat.
const (
	EnvConfig         = "RULECAT_CONFIG"
	EnvLogLevel       = "RULECAT_LOG_LEVEL"
	EnvLogFormat      = "RULECAT_LOG_FORMAT"
	EnvNoColor        = "RULECAT_NO_COLOR"
	EnvNonInteractive = "RULECAT_NON_INTERACTIVE"
)
