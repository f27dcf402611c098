package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/claude-setup/internal/check"
	"github.com/conn-castle/claude-setup/internal/messages"
)

var checkBundle = check.Bundle

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.CheckUse,
		Short: messages.CheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path, _, err := opts.locateBundle()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.CheckHeaderFmt, path)
			results := checkBundle(path)
			for _, r := range results {
				printResult(out, r)
			}
			_, _ = fmt.Fprintln(out)

			if check.HasFailures(results) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.CheckFailureSummary))
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.CheckSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r check.Result) {
	var status string
	switch r.Status {
	case check.StatusOK:
		status = color.GreenString(messages.CheckStatusOKLabel)
	case check.StatusWarn:
		status = color.YellowString(messages.CheckStatusWarnLabel)
	case check.StatusFail:
		status = color.RedString(messages.CheckStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.CheckResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		for _, line := range strings.Split(r.Recommendation, "\n") {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.CheckRecommendPrefix, line)
		}
	}
}
