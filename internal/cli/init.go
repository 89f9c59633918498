package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grampay/rulecat/internal/cli/wizard"
	"github.com/grampay/rulecat/internal/config"
	"github.com/grampay/rulecat/internal/fragment"
	"github.com/grampay/rulecat/internal/ui"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create rulecat.yaml in the project root",
		Long: `Write a rulecat.yaml with the default settings and create the
fragment directory. On a terminal a short wizard asks for the paths, the
merge order and the separator; without a terminal, or with
--non-interactive, the defaults and flags are used as given.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	cmd.Flags().Bool("non-interactive", false, "Skip the wizard and use defaults and flags")
	cmd.Flags().Bool("force", false, "Replace an existing rulecat.yaml")
	cmd.Flags().String("source", "", "Fragment directory")
	cmd.Flags().String("output", "", "Output file")
	cmd.Flags().String("order", "", "Order strategy: prefix, natural or manifest")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	root, err := projectRoot(cmd)
	if err != nil {
		return err
	}

	cfg := config.NewDefaultConfig()
	if err := applyConcatFlags(cmd, &cfg.Concat); err != nil {
		return err
	}

	sys := currentSystem(root)
	theme := ui.NewTheme(getBoolFlag(cmd, "no-color") || sys.NoColor, deps.Headless)
	if interactive(cmd, sys) {
		result, err := wizard.Run(wizard.DefaultQuestions(cfg))
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), theme.Muted("init cancelled"))
				return nil
			}
			return err
		}
		wizard.Apply(result, cfg)
	}

	path, err := config.WriteDefault(root, cfg, getBoolFlag(cmd, "force"))
	if err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return fmt.Errorf("%w (use --force to replace it)", err)
		}
		return err
	}

	sourceDir := config.ResolvePath(root, cfg.Concat.SourceDir)
	if err := os.MkdirAll(sourceDir, 0o755); err != nil {
		return fmt.Errorf("create fragment directory: %w", err)
	}

	details := []string{
		"fragments: " + sourceDir,
		"output: " + config.ResolvePath(root, cfg.Concat.OutputPath),
		"order: " + string(cfg.Concat.Order),
	}
	if cfg.Concat.Order == fragment.StrategyManifest {
		details = append(details, `next: run "rulecat manifest generate"`)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessCard("Created "+path, details...))
	return nil
}

// currentSystem returns the system section of an existing rulecat.yaml with
// environment overrides applied. An unreadable or invalid file yields the
// defaults, so that init --force can replace it.
func currentSystem(root string) config.SystemConfig {
	cfg, err := deps.Config.Load(root)
	if err != nil {
		deps.Logger.Debug("existing config not usable, using defaults", "error", err)
		cfg = config.NewDefaultConfig()
		config.ApplyEnvOverrides(cfg)
	}
	return cfg.System
}

// interactive reports whether init should run the wizard.
func interactive(cmd *cobra.Command, sys config.SystemConfig) bool {
	if getBoolFlag(cmd, "non-interactive") || sys.NonInteractive {
		return false
	}
	return !deps.Headless.IsHeadless()
}
