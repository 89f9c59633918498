package config

import (
	"slices"

	"github.com/grampay/rulecat/internal/fragment"
	"github.com/grampay/rulecat/internal/site"
)

// Config is the root configuration aggregate containing all sections.
type Config struct {
	Concat ConcatConfig `yaml:"concat"`
	Site   site.Site    `yaml:"site,omitempty"`
	System SystemConfig `yaml:"system"`
}

// ConcatConfig controls how fragments are merged.
// Relative paths are resolved against the project root.
type ConcatConfig struct {
	SourceDir  string            `yaml:"source_dir"`
	OutputPath string            `yaml:"output_path"`
	Order      fragment.Strategy `yaml:"order"`    // "prefix", "natural", "manifest"
	Manifest   string            `yaml:"manifest"` // used by order: manifest
	Separator  string            `yaml:"separator"`
	Extensions []string          `yaml:"extensions,omitempty"` // empty means every file
}

// SystemConfig represents the system configuration section.
type SystemConfig struct {
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
	NoColor        bool   `yaml:"no_color"`
	NonInteractive bool   `yaml:"non_interactive"`
}

// sectionNames lists all valid configuration section names.
var sectionNames = []string{"concat", "site", "system"}

// IsValidSectionName checks if the given name is a valid section name.
func IsValidSectionName(name string) bool {
	return slices.Contains(sectionNames, name)
}

// ValidSectionNames returns all valid section names.
func ValidSectionNames() []string {
	result := make([]string, len(sectionNames))
	copy(result, sectionNames)
	return result
}
