package config

import (
	"path/filepath"

	"github.com/grampay/rulecat/internal/defs"
	"github.com/grampay/rulecat/internal/fragment"
	"github.com/grampay/rulecat/internal/site"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultOrder     = fragment.StrategyPrefix
	DefaultSeparator = ""

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Default paths, relative to the project root.
var (
	DefaultSourceDir  = filepath.Join(defs.DocsDir, defs.PartsDir)
	DefaultOutputPath = filepath.Join(defs.DocsDir, defs.CursorRules)
	DefaultManifest   = filepath.Join(defs.DocsDir, defs.PartsDir, defs.ManifestYAML)
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Concat: NewDefaultConcatConfig(),
		Site:   site.Site{},
		System: NewDefaultSystemConfig(),
	}
}

// NewDefaultConcatConfig returns a ConcatConfig with default values.
func NewDefaultConcatConfig() ConcatConfig {
	return ConcatConfig{
		SourceDir:  DefaultSourceDir,
		OutputPath: DefaultOutputPath,
		Order:      DefaultOrder,
		Manifest:   DefaultManifest,
		Separator:  DefaultSeparator,
	}
}

// NewDefaultSystemConfig returns a SystemConfig with default values.
func NewDefaultSystemConfig() SystemConfig {
	return SystemConfig{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}
