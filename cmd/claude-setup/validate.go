package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/claude-setup/internal/deploy"
	"github.com/conn-castle/claude-setup/internal/messages"
)

func newValidateCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ValidateUse,
		Short: messages.ValidateShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			valid, reason := deploy.ValidateTarget(nil, args[0])
			if !valid {
				_, _ = fmt.Fprintf(out, messages.ValidateResultFmt, args[0], color.RedString(reason))
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintf(out, messages.ValidateResultFmt, args[0], color.GreenString(reason))
			return nil
		},
	}
}
