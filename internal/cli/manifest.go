package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grampay/rulecat/internal/fragment"
	"github.com/grampay/rulecat/internal/manifest"
)

func newManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Manage the explicit fragment order",
		Long: `The manifest (fragments.yaml by default) assigns each fragment an
explicit order, so that "--order manifest" no longer depends on filename
prefixes.`,
	}
	cmd.AddCommand(newManifestGenerateCmd())
	return cmd
}

func newManifestGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a manifest from the current fragment order",
		Long: `Freeze the current prefix order of the source directory into a
manifest. Building with "--order manifest" afterwards produces the same
output. With --from-sidebar the order follows the site sidebar instead.`,
		Args: cobra.NoArgs,
		RunE: runManifestGenerate,
	}
	cmd.Flags().String("source", "", "Fragment directory (default: concat.source_dir)")
	cmd.Flags().String("manifest", "", "Manifest file to write (default: concat.manifest)")
	cmd.Flags().Bool("from-sidebar", false, "Order fragments by the site sidebar in rulecat.yaml")
	cmd.Flags().Bool("force", false, "Replace an existing manifest")
	return cmd
}

func runManifestGenerate(cmd *cobra.Command, _ []string) error {
	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	c := p.cfg.Concat
	if v := getStringFlag(cmd, "source"); v != "" {
		c.SourceDir = v
	}
	if v := getStringFlag(cmd, "manifest"); v != "" {
		c.Manifest = v
	}
	if c.Manifest == "" {
		return fmt.Errorf("no manifest path: set concat.manifest or pass --manifest")
	}
	sourceDir, manifestPath := p.path(c.SourceDir), p.path(c.Manifest)

	if _, err := os.Stat(manifestPath); err == nil && !getBoolFlag(cmd, "force") {
		return fmt.Errorf("%w: %s (use --force to replace it)", manifest.ErrManifestExists, manifestPath)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	frags, err := fragment.Plan(ctx, sourceDir,
		fragment.WithExtensions(c.Extensions...),
		fragment.WithExclude(manifestPath, p.conf.Path(), p.path(c.OutputPath)),
		fragment.WithLogger(p.logger),
	)
	if err != nil {
		return err
	}

	source := "filename prefix"
	var m *manifest.Manifest
	if getBoolFlag(cmd, "from-sidebar") {
		if len(p.cfg.Site.Sidebar) == 0 {
			return fmt.Errorf("--from-sidebar: no site.sidebar in %s", p.conf.Path())
		}
		m = p.cfg.Site.OrderFromSidebar(frags)
		source = "site sidebar"
	} else {
		m = manifest.FromFragments(frags)
	}

	if err := m.Validate(); err != nil {
		return err
	}
	if err := m.Save(manifestPath); err != nil {
		return err
	}

	p.logger.Info("manifest written", "path", manifestPath, "entries", len(m.Fragments), "from", source)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), p.theme.SuccessCard(
		"Manifest written: "+manifestPath,
		fmt.Sprintf("entries: %d", len(m.Fragments)),
		"order from: "+source,
	))
	return nil
}
