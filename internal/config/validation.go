package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/grampay/rulecat/internal/fragment"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks the configuration for correctness.
// The loadedSections map indicates which sections were present in the
// configuration file. Section requirements that only make sense for an
// explicitly declared section are checked only when it was loaded.
func Validate(cfg *Config, loadedSections map[string]bool) error {
	var errs []ValidationError

	errs = append(errs, validateConcat(&cfg.Concat)...)
	errs = append(errs, validateSystem(&cfg.System)...)

	if err := cfg.Site.Validate(); err != nil {
		errs = append(errs, ValidationError{
			Field:   "site",
			Message: err.Error(),
			Wrapped: ErrInvalidConfig,
		})
	}

	if loadedSections["site"] && len(cfg.Site.Sidebar) == 0 {
		errs = append(errs, ValidationError{
			Field:   "site.sidebar",
			Message: "site section declared without a sidebar; add sidebar sections or remove the site section from rulecat.yaml",
			Wrapped: ErrInvalidConfig,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateConcat(c *ConcatConfig) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(c.SourceDir) == "" {
		errs = append(errs, ValidationError{
			Field:   "concat.source_dir",
			Message: "required field is empty (example: source_dir: docs/parts)",
			Wrapped: ErrInvalidConfig,
		})
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		errs = append(errs, ValidationError{
			Field:   "concat.output_path",
			Message: "required field is empty (example: output_path: docs/.cursorrules)",
			Wrapped: ErrInvalidConfig,
		})
	}
	if c.Order != "" && !c.Order.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "concat.order",
			Message: fmt.Sprintf("must be one of: %s", strategyList()),
			Value:   string(c.Order),
			Wrapped: fragment.ErrInvalidStrategy,
		})
	}
	if c.Order == fragment.StrategyManifest && strings.TrimSpace(c.Manifest) == "" {
		errs = append(errs, ValidationError{
			Field:   "concat.manifest",
			Message: "required when order is manifest",
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

func validateSystem(s *SystemConfig) []ValidationError {
	var errs []ValidationError

	if s.LogLevel != "" && !slices.Contains(validLogLevels, strings.ToLower(s.LogLevel)) {
		errs = append(errs, ValidationError{
			Field:   "system.log_level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			Value:   s.LogLevel,
			Wrapped: ErrInvalidConfig,
		})
	}
	if s.LogFormat != "" && !slices.Contains(validLogFormats, strings.ToLower(s.LogFormat)) {
		errs = append(errs, ValidationError{
			Field:   "system.log_format",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogFormats, ", ")),
			Value:   s.LogFormat,
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

func strategyList() string {
	names := make([]string, 0, len(fragment.Strategies()))
	for _, s := range fragment.Strategies() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
