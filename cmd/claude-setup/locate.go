package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/claude-setup/internal/messages"
)

func newLocateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.LocateUse,
		Short: messages.LocateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, loc, err := opts.locateBundle()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.LocateFmt, path, loc.Mode())
			return nil
		},
	}
}
