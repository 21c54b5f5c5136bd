package messages

// Install messages for the managed pre-commit configuration.
const (
	// InstallRootRequired indicates root path is required for install.
	InstallRootRequired    = "root path is required"
	InstallSystemRequired  = "install system is required"
	InstallFailedStatFmt   = "failed to stat %s: %w"
	InstallFailedReadFmt   = "failed to read %s: %w"
	InstallFailedBackupFmt = "failed to back up %s to %s: %w"
	InstallFailedWriteFmt  = "failed to write %s: %w"
	InstallBackupTakenFmt  = "backup path %s already exists"
	InstallBackedUp        = "Backed up existing config"
	InstallWrote           = "Wrote managed config"
	InstallDiffPreview     = "Config changes"
	InstallDiffTruncFmt    = "... (truncated to %d lines)"
	InstallNotYAMLFmt      = "%s is not valid YAML: %w"
)
