package config

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader reads configuration from the rulecat.yaml project file.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu             sync.RWMutex
	loadedSections map[string]bool
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at path and returns a Config with
// defaults applied for missing fields. A missing file yields defaults.
// Invalid YAML is an error: a build must not silently fall back to
// defaults when the project file is broken.
func (l *Loader) Load(path string) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loadedSections = make(map[string]bool)
	cfg := NewDefaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// First pass records which top-level sections the file declares.
	var present map[string]yaml.Node
	if err := yaml.Unmarshal(data, &present); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}

	// Second pass decodes over the defaults so absent keys keep them.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}

	for name := range present {
		if IsValidSectionName(name) {
			l.loadedSections[name] = true
		} else {
			slog.Warn("unknown config section ignored", "section", name, "path", path,
				"valid", strings.Join(ValidSectionNames(), ", "))
		}
	}

	return cfg, nil
}

// LoadedSections returns a copy of the map indicating which sections
// were present in the configuration file.
func (l *Loader) LoadedSections() map[string]bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]bool, len(l.loadedSections))
	maps.Copy(result, l.loadedSections)
	return result
}
