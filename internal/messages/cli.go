package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "pc-onboard"
	// RootShort is the short description for the root command.
	RootShort         = "Automate repository onboarding for enterprise pre-commit standards"
	RootFlagRepoRoot  = "Path to the repository root (defaults to the enclosing git work tree)"
	RootFlagVerbose   = "Print every command before execution and enable debug logging"
	RootRepoRootFmt   = "resolve repository root %s: %w"
	RootNotADirFmt    = "repository root %s is not a directory"
	RootOpenRepoFmt   = "open git repository at %s: %w"
	RootGitConfigFmt  = "read git config for %s: %w"
	RootExpandFmt     = "expand path %s: %w"
	ErrorLineFmt      = "Error: %v\n"
	RepositoryLineFmt = "Repository: %s\n\n"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InitUse is the init command name.
	InitUse         = "init"
	InitShort       = "Onboard this repository to enterprise pre-commit standards"
	InitFlagRunAll  = "Run pre-commit on all files after installing hooks"
	InitFlagNoRun   = "Do not run pre-commit on all files"
	InitFlagPrompt  = "Skip interactive prompts"
	InitRunAllBoth  = "--run-all and --no-run-all cannot be used together"
	InitSummaryHead = "\nOnboarding complete:"
	InitSummaryFmt  = "  %-16s %s\n"
	InitSummaryNone = "(none)"

	InitSummaryManager = "package manager"
	InitSummaryPython  = "python"
	InitSummaryConfig  = "config"
	InitSummaryBackup  = "backup"
	InitSummaryRunAll  = "run-all exit"
	InitSummaryFromFmt = "%s (from %s)"

	// PromptRunAll asks whether to run the hooks on every file.
	PromptRunAll       = "Run pre-commit on all files now?"
	PromptNoDefaultFmt = "%s [y/N] "
	PromptAffirmative  = "Yes"
	PromptNegative     = "No"
)
