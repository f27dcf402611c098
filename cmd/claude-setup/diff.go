package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/claude-setup/internal/deploy"
	"github.com/conn-castle/claude-setup/internal/messages"
)

func newDiffCmd(opts *rootOptions) *cobra.Command {
	var diffLines int

	cmd := &cobra.Command{
		Use:   messages.DiffUse,
		Short: messages.DiffShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTarget(args)
			if err != nil {
				return err
			}
			source, _, err := opts.locateBundle()
			if err != nil {
				return err
			}
			lines := opts.cfg.Deploy.DiffLines
			if cmd.Flags().Changed("diff-lines") {
				lines = diffLines
			}
			plan, err := previewBundle(nil, source, target, deploy.PreviewOptions{DiffMaxLines: lines})
			if err != nil {
				return err
			}
			printPlan(cmd.OutOrStdout(), target, plan)
			return nil
		},
	}

	cmd.Flags().IntVar(&diffLines, "diff-lines", deploy.DefaultDiffMaxLines, messages.DiffFlagLines)

	return cmd
}

func printPlan(out io.Writer, target string, plan deploy.Plan) {
	if !plan.Exists {
		_, _ = fmt.Fprintf(out, messages.DiffNoDeploymentFmt, target, len(plan.Added))
		return
	}
	if plan.Empty() {
		_, _ = fmt.Fprintln(out, messages.DiffNoChanges)
		return
	}
	if len(plan.Added) > 0 {
		_, _ = fmt.Fprintln(out, color.GreenString(messages.DiffAddedHeader))
		for _, path := range plan.Added {
			_, _ = fmt.Fprintf(out, messages.DiffLineFmt, path)
		}
	}
	if len(plan.Changed) > 0 {
		_, _ = fmt.Fprintln(out, color.YellowString(messages.DiffChangedHeader))
		for _, diff := range plan.Changed {
			_, _ = fmt.Fprintf(out, messages.DiffLineFmt, diff.Path)
			_, _ = fmt.Fprint(out, diff.UnifiedDiff)
		}
	}
	if len(plan.Removed) > 0 {
		_, _ = fmt.Fprintln(out, color.RedString(messages.DiffRemovedHeader))
		for _, path := range plan.Removed {
			_, _ = fmt.Fprintf(out, messages.DiffLineFmt, path)
		}
	}
}
