package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grampay/rulecat/internal/fragment"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the merge order without writing anything",
		Long: `List the fragments build would merge, in merge order, with the key
each one is ordered by. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: runPlan,
	}
	addConcatFlags(cmd, false)
	return cmd
}

func runPlan(cmd *cobra.Command, _ []string) error {
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

	frags, err := fragment.Plan(ctx, cp.sourceDir, cp.opts...)
	if err != nil {
		return err
	}
	p.warnUnlisted(cmd, cp, frags)

	out := cmd.OutOrStdout()
	if len(frags) == 0 {
		_, _ = fmt.Fprintln(out, p.theme.Muted("no fragments in "+cp.sourceDir))
		return nil
	}

	rows := make([][2]string, 0, len(frags))
	for _, f := range frags {
		rows = append(rows, [2]string{cp.key(f), f.Name})
	}
	_, _ = fmt.Fprintln(out, p.theme.Card(
		fmt.Sprintf("Merge order (%s)", cp.strategy),
		p.theme.OrderTable(rows),
	))
	return nil
}

// key returns the effective sort key shown for f.
func (cp *concatPlan) key(f fragment.Fragment) string {
	if cp.manifest != nil {
		if order, ok := cp.manifest.Lookup(f.Name); ok {
			return strconv.Itoa(order)
		}
		return strconv.Itoa(f.Order) + "*"
	}
	return strconv.Itoa(f.Order)
}
