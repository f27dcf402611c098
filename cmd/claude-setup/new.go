package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/claude-setup/internal/deploy"
	"github.com/conn-castle/claude-setup/internal/messages"
)

var mkdir = os.Mkdir

func newNewCmd(opts *rootOptions) *cobra.Command {
	var flags deployFlags

	cmd := &cobra.Command{
		Use:   messages.NewUse,
		Short: messages.NewShort,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent := args[0]
			source, _, err := opts.locateBundle()
			if err != nil {
				return err
			}
			name := ""
			if len(args) > 1 {
				name = args[1]
			}
			if strings.TrimSpace(name) == "" {
				prompted, err := promptProjectName()
				if err != nil {
					return err
				}
				name = prompted
			}
			if err := validateProjectName(name); err != nil {
				return err
			}

			dir := filepath.Join(parent, strings.TrimSpace(name))
			if err := deploy.Validate(nil, dir); err != nil {
				return fmt.Errorf(messages.DeployInvalidTargetFmt, err)
			}
			if err := deploy.CheckOverlap(nil, source, dir); err != nil {
				return err
			}
			if _, err := os.Lstat(dir); err == nil {
				return fmt.Errorf(messages.NewAlreadyExistsFmt, dir)
			} else if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf(messages.DeployFailedStatFmt, dir, err)
			}
			if err := mkdir(dir, 0o755); err != nil {
				return fmt.Errorf(messages.NewCreateFailedFmt, dir, err)
			}
			if err := runDeploy(cmd, opts, source, dir, flags); err != nil {
				// Removes the folder only while it is still empty.
				_ = os.Remove(dir)
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, messages.DeployFlagStrict)

	return cmd
}

func promptProjectName() (string, error) {
	prompter := newPrompter()
	if !prompter.Interactive() {
		return "", errors.New(messages.NewRequiresTerminal)
	}
	var name string
	if err := prompter.Input(messages.NewNamePrompt, &name, validateProjectName); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// validateProjectName accepts a single, non-empty path element.
func validateProjectName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New(messages.NewNameRequired)
	}
	if trimmed == "." || trimmed == ".." || strings.ContainsAny(trimmed, `/\`) || filepath.Base(trimmed) != trimmed {
		return fmt.Errorf(messages.NewNameInvalidFmt, trimmed)
	}
	return nil
}
