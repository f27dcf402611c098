package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "claude-setup"
	// RootShort is the short description for the root command.
	RootShort = "Deploy the Claude workflow bundle into projects"
	RootLong  = "Copy the .claude/ bundle (commands, skills, hooks, settings) into new or existing project directories."

	RootFlagBundle = "Path to the bundle directory (overrides config and mode)"
	RootFlagMode   = "Bundle resolution mode: executable or source (default: detect)"
	RootFlagConfig = "Path to the config file"
	RootFlagDebug  = "Print debug trace output to stderr"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// DeployUse is the deploy command usage.
	DeployUse           = "deploy [target]"
	DeployShort         = "Copy the bundle into <target>/.claude"
	DeployLong          = "Copy the bundle into <target>/.claude. The target defaults to the current project root."
	DeployFlagOverwrite = "Replace an existing .claude/ folder"
	DeployFlagYes       = "Do not prompt; authorize overwriting an existing .claude/ folder"
	DeployFlagStrict    = "Also verify component kinds and that settings.json parses"

	DeployOverwritePromptFmt   = ".claude/ folder already exists in %s. Overwrite it?"
	DeployOverwriteSummaryFmt  = "An overwrite adds %d, changes %d and removes %d file(s) (%d unchanged)."
	DeployOverwriteRequiresTTY = "re-run with --overwrite or --yes to replace it without a prompt"
	DeployCancelled            = "cancelled - .claude/ folder already exists"
	DeployInvalidTargetFmt     = "invalid target: %w"
	DeployCopyFailedFmt        = "failed to copy .claude/ folder: %w"
	DeploySuccessFmt           = "success! .claude/ folder copied to %s (%d files)\n"
	DeployHiddenNote           = "note: .claude is a hidden folder (starts with a dot); use ls -a to see it"

	// NewUse is the new command usage.
	NewUse              = "new <parent> [name]"
	NewShort            = "Create a new project folder and deploy the bundle into it"
	NewNamePrompt       = "enter project folder name:"
	NewNameRequired     = "project folder name is required"
	NewNameInvalidFmt   = "project folder name %q must be a single path element"
	NewAlreadyExistsFmt = "folder already exists: %s; use 'claude-setup deploy' instead"
	NewCreateFailedFmt  = "failed to create folder %s: %w"
	NewRequiresTerminal = "project folder name is required when not running in an interactive terminal"

	// ValidateUse is the validate command usage.
	ValidateUse       = "validate <target>"
	ValidateShort     = "Check whether a target directory can receive a deployment"
	ValidateResultFmt = "%s: %s\n"

	// DiffUse is the diff command usage.
	DiffUse             = "diff [target]"
	DiffShort           = "Preview what overwriting <target>/.claude would change"
	DiffFlagLines       = "Maximum diff lines shown per file"
	DiffNoChanges       = "No differences: the deployment matches the bundle."
	DiffAddedHeader     = "Files the bundle adds:"
	DiffChangedHeader   = "Files that differ from the bundle:"
	DiffRemovedHeader   = "Files an overwrite removes:"
	DiffLineFmt         = "  - %s\n"
	DiffNoDeploymentFmt = "No .claude/ folder in %s yet; a deployment adds all %d bundle file(s).\n"

	// CheckUse is the check command usage.
	CheckUse   = "check"
	CheckShort = "Inspect the bundle for problems before deploying it"

	// LocateUse is the locate command usage.
	LocateUse   = "locate"
	LocateShort = "Print the resolved bundle path"
	LocateFmt   = "%s (mode: %s)\n"

	UIRequiresTerminal = "prompt requires an interactive terminal"
	UICancelled        = "prompt cancelled"
)
