package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/claude-setup/internal/bundle"
	"github.com/conn-castle/claude-setup/internal/deploy"
	"github.com/conn-castle/claude-setup/internal/messages"
	"github.com/conn-castle/claude-setup/internal/ui"
)

var (
	deployBundle  = deploy.Deploy
	previewBundle = deploy.Preview
	countFiles    = bundle.CountFiles
)

// deployFlags are the flags shared by deploy and new.
type deployFlags struct {
	overwrite bool
	yes       bool
	strict    bool
}

func newDeployCmd(opts *rootOptions) *cobra.Command {
	var flags deployFlags

	cmd := &cobra.Command{
		Use:   messages.DeployUse,
		Short: messages.DeployShort,
		Long:  messages.DeployLong,
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
			return runDeploy(cmd, opts, source, target, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.overwrite, "overwrite", "o", false, messages.DeployFlagOverwrite)
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, messages.DeployFlagYes)
	cmd.Flags().BoolVar(&flags.strict, "strict", false, messages.DeployFlagStrict)

	return cmd
}

// runDeploy validates target, confirms an overwrite when one is needed, copies
// the bundle at source and reports the result.
func runDeploy(cmd *cobra.Command, opts *rootOptions, source string, target string, flags deployFlags) error {
	out := cmd.OutOrStdout()
	if err := deploy.Validate(nil, target); err != nil {
		return fmt.Errorf(messages.DeployInvalidTargetFmt, err)
	}
	if err := deploy.CheckOverlap(nil, source, target); err != nil {
		return err
	}

	overwrite := flags.overwrite || flags.yes
	exists, err := deploy.Exists(nil, target)
	if err != nil {
		return err
	}
	if exists && !overwrite {
		prompter := newPrompter()
		if !prompter.Interactive() {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), messages.DeployOverwriteRequiresTTY)
		} else {
			confirmed, err := confirmOverwrite(prompter, opts, source, target)
			if err != nil && !errors.Is(err, ui.ErrCancelled) {
				return err
			}
			if !confirmed {
				_, _ = fmt.Fprintln(out, color.YellowString(messages.DeployCancelled))
				return nil
			}
			overwrite = true
		}
	}

	result, err := deployBundle(source, target, deploy.Options{
		Overwrite: overwrite,
		Strict:    flags.strict || opts.cfg.Deploy.Strict,
		Logger:    opts.log,
	})
	if err != nil {
		if deploy.KindOf(err) == deploy.KindUnknown {
			return fmt.Errorf(messages.DeployCopyFailedFmt, err)
		}
		return err
	}

	files, err := countFiles(result.Path)
	if err != nil {
		opts.log.Debug().Err(err).Msg("file count failed")
		files = result.Files
	}
	_, _ = fmt.Fprint(out, color.GreenString(messages.DeploySuccessFmt, result.Path, files))
	_, _ = fmt.Fprintln(out, messages.DeployHiddenNote)
	return nil
}

// confirmOverwrite asks whether the existing deployment may be replaced. The
// prompt description summarizes the overwrite preview.
func confirmOverwrite(prompter ui.Prompter, opts *rootOptions, source string, target string) (bool, error) {
	description := ""
	plan, err := previewBundle(nil, source, target, deploy.PreviewOptions{DiffMaxLines: opts.cfg.Deploy.DiffLines})
	if err != nil {
		opts.log.Debug().Err(err).Msg("overwrite preview failed")
	} else {
		description = fmt.Sprintf(messages.DeployOverwriteSummaryFmt, len(plan.Added), len(plan.Changed), len(plan.Removed), plan.Unchanged)
	}

	confirmed := false
	if err := prompter.Confirm(fmt.Sprintf(messages.DeployOverwritePromptFmt, target), description, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
