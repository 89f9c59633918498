package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/grampay/rulecat/internal/defs"
	"github.com/grampay/rulecat/internal/fsutil"
)

// Manager loads the project configuration and resolves paths against the
// project root. Resolve and Path are meaningful only after Load.
type Manager struct {
	mu             sync.RWMutex
	root           string
	path           string
	loader         *Loader
	loadedSections map[string]bool
}

// NewManager creates a Manager with no configuration loaded.
func NewManager() *Manager {
	return &Manager{loader: NewLoader()}
}

// FilePath returns the configuration file location for projectRoot,
// honouring the RULECAT_CONFIG override.
func FilePath(projectRoot string) string {
	if env := os.Getenv(defs.EnvConfig); env != "" {
		return filepath.Clean(env)
	}
	return filepath.Join(filepath.Clean(projectRoot), defs.ConfigYAML)
}

// Load reads configuration for the given project root. It merges file
// values with compiled defaults and applies environment variable
// overrides. The configuration is validated before being stored.
func (m *Manager) Load(projectRoot string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := FilePath(projectRoot)
	cfg, err := m.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	m.loadedSections = m.loader.LoadedSections()

	// Environment variables win over file values.
	ApplyEnvOverrides(cfg)
	normalizeSystem(&cfg.System)

	if err := Validate(cfg, m.loadedSections); err != nil {
		return nil, err
	}

	m.root = filepath.Clean(projectRoot)
	m.path = path

	return cfg, nil
}

// Path returns the file the configuration was loaded from.
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// LoadedSections reports which sections the configuration file declared.
func (m *Manager) LoadedSections() map[string]bool {
	return m.loader.LoadedSections()
}

// Resolve makes p absolute against the project root unless it already is.
func (m *Manager) Resolve(p string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return ResolvePath(m.root, p)
}

// ResolvePath joins a relative p onto root. Empty and absolute paths are
// returned unchanged.
func ResolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// WriteDefault writes cfg (or the defaults when cfg is nil) to the
// configuration file of projectRoot. It refuses to replace an existing
// file unless force is set.
func WriteDefault(projectRoot string, cfg *Config, force bool) (string, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if err := Validate(cfg, nil); err != nil {
		return "", err
	}

	path := FilePath(projectRoot)
	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, fmt.Errorf("create config directory: %w", err)
	}
	return path, save(path, cfg)
}

func save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := fsutil.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func ApplyEnvOverrides(cfg *Config) {
	if level := os.Getenv(defs.EnvLogLevel); level != "" {
		cfg.System.LogLevel = level
	}
	if format := os.Getenv(defs.EnvLogFormat); format != "" {
		cfg.System.LogFormat = format
	}
	if noColor := os.Getenv(defs.EnvNoColor); noColor == "true" || noColor == "1" {
		cfg.System.NoColor = true
	}
	if ni := os.Getenv(defs.EnvNonInteractive); ni == "true" || ni == "1" {
		cfg.System.NonInteractive = true
	}
}

// normalizeSystem lowercases the logging keys, which are matched
// case-insensitively.
func normalizeSystem(s *SystemConfig) {
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	s.LogFormat = strings.ToLower(strings.TrimSpace(s.LogFormat))
}
