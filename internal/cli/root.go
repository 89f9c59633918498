package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grampay/rulecat/pkg/version"
)

// newRootCmd builds the full command tree. Commands are constructed per
// call so tests get fresh flag state.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rulecat",
		Short: "Merge numbered documentation fragments into an editor assistant context file",
		Long: `rulecat merges a directory of numbered markdown fragments
(docs/parts/1-intro.md, docs/parts/12-api.md, ...) into a single context
file (docs/.cursorrules by default) in numeric prefix order.

It also keeps the documentation navigation model and an optional explicit
ordering manifest (fragments.yaml) in rulecat.yaml.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("rulecat %s\n", version.GetFullVersion()))

	rootCmd.PersistentFlags().String("root", "", "Project root directory (default: current directory)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled output")

	rootCmd.AddCommand(
		newBuildCmd(),
		newPlanCmd(),
		newManifestCmd(),
		newInitCmd(),
	)
	return rootCmd
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		cmd.PrintErrln("Error:", err)
	}
	return err
}
