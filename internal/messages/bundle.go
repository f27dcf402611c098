package messages

// Bundle location and config messages.
const (
	// BundleNotFoundFmt reports a bundle directory that could not be found.
	BundleNotFoundFmt           = "%w at %s\nensure the .claude/ folder sits next to the claude-setup binary, or pass --bundle"
	BundleNotDirFmt             = "bundle path is not a directory: %s"
	BundleFailedStatFmt         = "failed to stat bundle %s: %w"
	BundleUnknownModeFmt        = "unknown bundle mode %q (supported: executable, source)"
	BundleResolveExecutableFmt  = "failed to resolve executable path: %w"
	BundleResolveHomeFmt        = "failed to expand bundle path %s: %w"
	BundleSourceRootNotFoundFmt = "no go.mod found above %s; source mode needs a repository checkout"
	BundleCountFailedFmt        = "failed to count files in %s: %w"

	// ConfigInvalidFmt formats TOML parse errors for a config source.
	ConfigInvalidFmt         = "invalid config %s: %w"
	ConfigReadFailedFmt      = "failed to read config %s: %w"
	ConfigEnvFailedFmt       = "parse env: %w"
	ConfigResolveHomeFmt     = "failed to resolve home directory: %w"
	ConfigInvalidModeFmt     = "config bundle.mode %q is invalid (supported: executable, source)"
	ConfigInvalidDiffLines   = "config deploy.diff_lines must not be negative"
	ConfigInvalidLogLevelFmt = "invalid log level %q: %w"
)
