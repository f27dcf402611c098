package messages

// Target validation and deployment messages.
const (
	// ValidateTargetOK is the reason reported for a deployable target.
	ValidateTargetOK = "valid target directory"
	// ValidateParentMissingFmt reports a missing parent for a target that does not exist yet.
	ValidateParentMissingFmt = "parent directory does not exist: %s"
	// ValidateParentNotDirFmt reports a parent path that is not a directory.
	ValidateParentNotDirFmt = "parent path is not a directory: %s"
	// ValidateTargetNotDirFmt reports an existing target that is not a directory.
	ValidateTargetNotDirFmt = "target path exists but is not a directory: %s"
	// ValidateNoWritePermissionFmt reports a failed write probe.
	ValidateNoWritePermissionFmt = "no write permission: %w"
	ValidateStatFailedFmt        = "failed to stat %s: %w"
	ValidateTargetRequired       = "target path is required"

	// DeployAlreadyExistsFmt reports an existing deployment when overwrite was not authorized.
	DeployAlreadyExistsFmt = ".claude/ already exists in %s; use overwrite to replace it"
	// DeployVerificationFailedFmt reports required components missing after the copy.
	DeployVerificationFailedFmt = "copy verification failed: missing %s"
	// DeployVerificationInvalidFmt reports components present with the wrong shape (strict mode).
	DeployVerificationInvalidFmt = "copy verification failed: %s"
	// DeploySourceOverlapFmt refuses a deployment root that nests with the bundle.
	DeploySourceOverlapFmt     = "refusing to deploy: %s overlaps the bundle at %s"
	DeployResolvePathFmt       = "failed to resolve %s: %w"
	DeploySourceRequired       = "bundle source path is required"
	DeployTargetRequired       = "target path is required"
	DeployFailedStatFmt        = "failed to stat %s: %w"
	DeployFailedRemoveFmt      = "failed to remove existing deployment %s: %w"
	DeployFailedCreateDirFmt   = "failed to create directory %s: %w"
	DeployFailedOpenFmt        = "failed to open %s: %w"
	DeployFailedReadFmt        = "failed to read %s: %w"
	DeployFailedCopyFmt        = "failed to copy %s to %s: %w"
	DeployFailedChmodFmt       = "failed to set permissions on %s: %w"
	DeployFailedChtimesFmt     = "failed to set modification time on %s: %w"
	DeployFailedResolveLinkFmt = "failed to resolve symlink %s: %w"
	DeploySymlinkLoopFmt       = "symlink loop detected at %s"
	DeployUnsupportedFileFmt   = "unsupported file type at %s (%s)"

	// DeploySettingsInvalidFmt reports an unparsable settings document in strict mode.
	DeploySettingsInvalidFmt = "%s is not valid JSON: %v"
	// DeployComponentKindFmt reports a component with the wrong node kind in strict mode.
	DeployComponentKindFmt = "%s must be a %s"

	// PreviewFailedReadFmt reports a read failure while building an overwrite preview.
	PreviewFailedReadFmt = "failed to read %s: %w"
	PreviewFailedWalkFmt = "failed to walk %s: %w"
	PreviewBinaryDiffer  = "binary files differ\n"
	PreviewTruncatedFmt  = "... (truncated to %d lines; rerun with %s <n> to see more)"
	PreviewDiffLinesFlag = "--diff-lines"
)
