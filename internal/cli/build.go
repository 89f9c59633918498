package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grampay/rulecat/internal/config"
	"github.com/grampay/rulecat/internal/fragment"
	"github.com/grampay/rulecat/internal/manifest"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Merge fragments into the context file",
		Long: `Merge every fragment of the source directory, ordered by filename
prefix (or the configured strategy), into the output file. The output is
replaced atomically; nothing is written if any fragment cannot be read.

Examples:
  rulecat build
  rulecat build --source docs/parts --output docs/.cursorrules
  rulecat build --order manifest`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}
	addConcatFlags(cmd, true)
	return cmd
}

// addConcatFlags registers the flags shared by build and plan.
func addConcatFlags(cmd *cobra.Command, withOutput bool) {
	cmd.Flags().String("source", "", "Fragment directory (default: concat.source_dir)")
	if withOutput {
		cmd.Flags().String("output", "", "Output file (default: concat.output_path)")
		cmd.Flags().String("separator", "", "Separator inserted between fragments (default: concat.separator)")
	}
	cmd.Flags().String("order", "", "Order strategy: prefix, natural or manifest (default: concat.order)")
	cmd.Flags().String("manifest", "", "Manifest file for --order manifest (default: concat.manifest)")
	cmd.Flags().StringSlice("ext", nil, "Only merge files with these extensions (default: concat.extensions)")
}

// applyConcatFlags overlays explicitly set flags onto the concat section.
func applyConcatFlags(cmd *cobra.Command, c *config.ConcatConfig) error {
	if v := getStringFlag(cmd, "source"); v != "" {
		c.SourceDir = v
	}
	if v := getStringFlag(cmd, "output"); v != "" {
		c.OutputPath = v
	}
	if cmd.Flags().Changed("separator") {
		c.Separator = getStringFlag(cmd, "separator")
	}
	if v := getStringFlag(cmd, "order"); v != "" {
		s := fragment.Strategy(v)
		if !s.IsValid() {
			return fmt.Errorf("invalid --order value %q: %w", v, fragment.ErrInvalidStrategy)
		}
		c.Order = s
	}
	if v := getStringFlag(cmd, "manifest"); v != "" {
		c.Manifest = v
	}
	if exts, err := cmd.Flags().GetStringSlice("ext"); err == nil && len(exts) > 0 {
		c.Extensions = exts
	}
	return nil
}

// concatPlan is the resolved input of a build or plan run.
type concatPlan struct {
	sourceDir    string
	outputPath   string
	manifestPath string
	strategy     fragment.Strategy
	manifest     *manifest.Manifest
	opts         []fragment.Option
}

// resolveConcat turns config plus flags into absolute paths and fragment
// options. For the manifest strategy the manifest is loaded here.
func (p *project) resolveConcat(cmd *cobra.Command) (*concatPlan, error) {
	c := p.cfg.Concat
	if err := applyConcatFlags(cmd, &c); err != nil {
		return nil, err
	}

	cp := &concatPlan{
		sourceDir:    p.path(c.SourceDir),
		outputPath:   p.path(c.OutputPath),
		manifestPath: p.path(c.Manifest),
		strategy:     c.Order,
	}
	if cp.strategy == "" {
		cp.strategy = fragment.StrategyPrefix
	}

	cp.opts = []fragment.Option{
		fragment.WithSeparator(c.Separator),
		fragment.WithExtensions(c.Extensions...),
		fragment.WithExclude(p.conf.Path(), cp.outputPath),
		fragment.WithLogger(p.logger),
	}
	if cp.manifestPath != "" {
		cp.opts = append(cp.opts, fragment.WithExclude(cp.manifestPath))
	}

	if cp.strategy == fragment.StrategyManifest {
		m, err := manifest.Load(cp.manifestPath)
		if err != nil {
			if errors.Is(err, manifest.ErrManifestNotFound) {
				return nil, fmt.Errorf("%w (run \"rulecat manifest generate\" first)", err)
			}
			return nil, err
		}
		cp.manifest = m
		cp.opts = append(cp.opts, fragment.WithComparator(m.Comparator()))
	} else {
		compare, err := cp.strategy.Comparator()
		if err != nil {
			return nil, err
		}
		cp.opts = append(cp.opts, fragment.WithComparator(compare))
	}
	return cp, nil
}

// warnUnlisted reports fragments the manifest does not know about.
func (p *project) warnUnlisted(cmd *cobra.Command, cp *concatPlan, frags []fragment.Fragment) {
	if cp.manifest == nil {
		return
	}
	for _, name := range cp.manifest.Missing(frags) {
		p.logger.Warn("fragment not listed in manifest, using filename prefix", "name", name, "manifest", cp.manifestPath)
		cmd.PrintErrln(p.theme.Warning(fmt.Sprintf("%s is not listed in %s; ordered by filename prefix", name, cp.manifestPath)))
	}
}

func runBuild(cmd *cobra.Command, _ []string) error {
	p, err := loadProject(cmd)
	if err != nil {
		return err
	}
	cp, err := p.resolveConcat(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cp.manifest != nil {
		frags, err := fragment.Plan(ctx, cp.sourceDir, cp.opts...)
		if err != nil {
			return err
		}
		p.warnUnlisted(cmd, cp, frags)
	}

	res, err := fragment.Concatenate(ctx, cp.sourceDir, cp.outputPath, cp.opts...)
	if err != nil {
		return err
	}

	p.logger.Debug("build finished", "output", res.OutputPath, "fragments", len(res.Fragments), "bytes", res.Bytes, "order", cp.strategy)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), p.theme.SuccessCard(
		"Context file written: "+res.OutputPath,
		fmt.Sprintf("fragments: %d", len(res.Fragments)),
		fmt.Sprintf("bytes: %d", res.Bytes),
		fmt.Sprintf("order: %s", cp.strategy),
	))
	return nil
}
