package messages

// System messages for process execution, provisioning, and tooling.
const (
	// RunnerEmptyCommand indicates a command without argv.
	RunnerEmptyCommand   = "command is empty"
	RunnerStartFailedFmt = "failed to run %s: %w"
	RunnerExitFmt        = "Command %s failed with exit code %d"
	RunnerExitStderrFmt  = "Command %s failed with exit code %d: %s"
	RunnerEchoFmt        = "$ %s"

	// ProvisionSkipped warns that no Python version was found.
	ProvisionSkipped        = "No Python version specified — skipping mise setup."
	ProvisionNotInstalled   = "mise is not installed or not on PATH. Install it from https://mise.jdx.dev"
	ProvisionInstallFailFmt = "Failed to install Python %s via mise: %v"
	ProvisionUseFailFmt     = "Failed to activate Python %s via mise: %v"
	ProvisionInstalling     = "Installing Python via mise"
	ProvisionPinned         = "Pinned Python via mise"

	// ToolingUnsupportedFmt reports an unknown package manager tag.
	ToolingUnsupportedFmt = "Unsupported package manager: %s"
)
