// Package config loads claude-setup settings from a TOML file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	env "github.com/caarlos0/env/v11"
	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/claude-setup/internal/bundle"
	"github.com/conn-castle/claude-setup/internal/logging"
	"github.com/conn-castle/claude-setup/internal/messages"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "CLAUDE_SETUP_CONFIG"

// DefaultDiffLines is the per-file diff cap used by overwrite previews.
const DefaultDiffLines = 40

// Config is the merged configuration. Environment variables win over file values.
type Config struct {
	Bundle BundleConfig `toml:"bundle"`
	Deploy DeployConfig `toml:"deploy"`
	Log    LogConfig    `toml:"log"`
}

// BundleConfig selects the bundle to deploy.
type BundleConfig struct {
	// Path is an explicit bundle root; when set it wins over Mode.
	Path string `toml:"path" env:"CLAUDE_SETUP_BUNDLE"`
	// Mode is "executable", "source" or empty for autodetection.
	Mode string `toml:"mode" env:"CLAUDE_SETUP_MODE"`
}

// DeployConfig holds deployment defaults.
type DeployConfig struct {
	Strict    bool `toml:"strict" env:"CLAUDE_SETUP_STRICT"`
	DiffLines int  `toml:"diff_lines" env:"CLAUDE_SETUP_DIFF_LINES"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level string `toml:"level" env:"CLAUDE_SETUP_LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Deploy: DeployConfig{DiffLines: DefaultDiffLines},
		Log:    LogConfig{Level: logging.DefaultLevel.String()},
	}
}

// DefaultPath returns ~/.config/claude-setup/config.toml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Join(home, ".config", "claude-setup", "config.toml"), nil
}

// ResolvePath picks the config file: flagPath, then $CLAUDE_SETUP_CONFIG, then
// DefaultPath. explicit reports whether the caller named the file, in which
// case it must exist.
func ResolvePath(flagPath string) (path string, explicit bool, err error) {
	if strings.TrimSpace(flagPath) != "" {
		path, err = homedir.Expand(flagPath)
		return path, true, err
	}
	if value, ok := os.LookupEnv(EnvConfigPath); ok && strings.TrimSpace(value) != "" {
		path, err = homedir.Expand(value)
		return path, true, err
	}
	path, err = DefaultPath()
	return path, false, err
}

// Load reads the config at path over the defaults, then applies the environment
// and validates the result. A missing file is only an error when explicit.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if cfg, err = Parse(data, path); err != nil {
			return Config{}, err
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// Defaults only.
	default:
		return Config{}, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults. Unknown keys are rejected.
func Parse(data []byte, source string) (Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any CLAUDE_SETUP_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf(messages.ConfigEnvFailedFmt, err)
	}
	return nil
}

// Validate checks enumerated and numeric fields.
func (c Config) Validate() error {
	if _, err := bundle.ParseMode(c.Bundle.Mode); err != nil {
		return fmt.Errorf(messages.ConfigInvalidModeFmt, c.Bundle.Mode)
	}
	if c.Deploy.DiffLines < 0 {
		return errors.New(messages.ConfigInvalidDiffLines)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
