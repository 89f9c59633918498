// Package cli provides the Cobra command tree and dependency wiring for
// the rulecat CLI. This file defines the Dependencies struct (Composition
// Root) and the per-invocation project context shared by all commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grampay/rulecat/internal/config"
	"github.com/grampay/rulecat/internal/ui"
)

// Dependencies holds the services used by CLI commands.
type Dependencies struct {
	Config   *config.Manager
	Headless *ui.HeadlessManager
	Logger   *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all dependencies.
// The logger starts discarded and is replaced once configuration is loaded.
func InitDependencies() {
	deps = &Dependencies{
		Config:   config.NewManager(),
		Headless: ui.NewHeadlessManager(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// project is the resolved context of one command invocation.
type project struct {
	root   string
	cfg    *config.Config
	conf   *config.Manager
	theme  *ui.Theme
	logger *slog.Logger
}

// loadProject resolves the project root, loads rulecat.yaml and builds the
// logger and theme for the command.
func loadProject(cmd *cobra.Command) (*project, error) {
	if deps == nil {
		return nil, fmt.Errorf("dependencies not initialized")
	}

	root, err := projectRoot(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := deps.Config.Load(root)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.System, cmd.ErrOrStderr())
	deps.Logger = logger
	logger.Debug("config loaded", "path", deps.Config.Path(), "sections", len(deps.Config.LoadedSections()))

	noColor := cfg.System.NoColor || getBoolFlag(cmd, "no-color")
	return &project{
		root:   root,
		cfg:    cfg,
		conf:   deps.Config,
		theme:  ui.NewTheme(noColor, deps.Headless),
		logger: logger,
	}, nil
}

// path resolves p against the project root.
func (p *project) path(rel string) string {
	return p.conf.Resolve(rel)
}

// projectRoot returns the --root flag value or the working directory.
func projectRoot(cmd *cobra.Command) (string, error) {
	if root := getStringFlag(cmd, "root"); root != "" {
		return filepath.Clean(root), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}

// newLogger builds the slog logger described by the system section.
func newLogger(sys config.SystemConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(sys.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(sys.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
