package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/conn-castle/claude-setup/internal/bundle"
	"github.com/conn-castle/claude-setup/internal/config"
	"github.com/conn-castle/claude-setup/internal/logging"
	"github.com/conn-castle/claude-setup/internal/messages"
	"github.com/conn-castle/claude-setup/internal/root"
	"github.com/conn-castle/claude-setup/internal/ui"
)

const (
	flagBundle = "bundle"
	flagMode   = "mode"
	flagConfig = "config"
	flagDebug  = "debug"
)

var (
	getwd          = os.Getwd
	executablePath = os.Executable
	newPrompter    = func() ui.Prompter { return ui.NewHuhUI() }
)

// rootOptions holds the global flags and the state loaded from them before a
// subcommand runs.
type rootOptions struct {
	bundlePath string
	mode       string
	configPath string
	debug      bool

	cfg config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.bundlePath, flagBundle, "", messages.RootFlagBundle)
	flags.StringVar(&opts.mode, flagMode, "", messages.RootFlagMode)
	flags.StringVar(&opts.configPath, flagConfig, "", messages.RootFlagConfig)
	flags.BoolVar(&opts.debug, flagDebug, false, messages.RootFlagDebug)

	cmd.AddCommand(
		newDeployCmd(opts),
		newNewCmd(opts),
		newValidateCmd(opts),
		newDiffCmd(opts),
		newCheckCmd(opts),
		newLocateCmd(opts),
	)
	return cmd
}

// load merges defaults, the config file, the environment and finally the flags
// the user set, then builds the logger.
func (o *rootOptions) load(cmd *cobra.Command) error {
	path, explicit, err := config.ResolvePath(o.configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed(flagBundle) {
		cfg.Bundle.Path = o.bundlePath
	}
	if flags.Changed(flagMode) {
		cfg.Bundle.Mode = o.mode
	}
	if o.debug {
		cfg.Log.Level = zerolog.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Output: cmd.ErrOrStderr(), Console: true})
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.log = log
	o.log.Debug().Str("config", path).Bool("explicit", explicit).Msg("configuration loaded")
	return nil
}

// locateBundle resolves the bundle root for the loaded configuration.
func (o *rootOptions) locateBundle() (string, bundle.Locator, error) {
	mode, err := bundle.ParseMode(o.cfg.Bundle.Mode)
	if err != nil {
		return "", nil, err
	}
	cwd, err := getwd()
	if err != nil {
		return "", nil, err
	}
	loc, err := bundle.NewLocator(bundle.LocatorOptions{
		Path:       o.cfg.Bundle.Path,
		Mode:       mode,
		WorkingDir: cwd,
		Executable: executablePath,
	})
	if err != nil {
		return "", nil, err
	}
	path, err := loc.Locate()
	if err != nil {
		return "", loc, err
	}
	o.log.Debug().Str("bundle", path).Str("mode", string(loc.Mode())).Msg("bundle located")
	return path, loc, nil
}

// resolveTarget returns args[0] when given, else the project root of the working directory.
func resolveTarget(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	return root.FindProjectRoot(cwd)
}
