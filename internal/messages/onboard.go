package messages

// Onboarding workflow messages.
const (
	// OnboardDetectedManager logs the detected package manager.
	OnboardDetectedManager = "Detected package manager"
	OnboardResolvedPython  = "Resolved Python version"
	OnboardInstallingDeps  = "Installing dev dependencies"
	OnboardInstallingHooks = "Installing pre-commit hooks"
	OnboardRunningAll      = "Running pre-commit on all files"
	OnboardRunnerRequired  = "command runner is required"
)
