package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the current environment and print diagnostic results"

	DoctorCheckNameMise           = "mise"
	DoctorCheckNamePackageManager = "package_manager"
	DoctorCheckNamePythonVersion  = "python_version"
	DoctorCheckNamePythonMatch    = "python_match"
	DoctorCheckNamePackageFmt     = "package_%s"
	DoctorCheckNameConfig         = "pre_commit_config"
	DoctorCheckNameHooks          = "pre_commit_hooks"

	DoctorMiseFoundFmt = "found at %s"
	DoctorMiseMissing  = "NOT FOUND — install from https://mise.jdx.dev"

	DoctorManagerDetectedFmt = "detected: %s"
	DoctorManagerMissingFmt  = "NOT DETECTED — %v"

	DoctorVersionResolvedFmt = "resolved: %s"
	DoctorVersionNotFound    = "not found in repo config files"
	DoctorVersionFailedFmt   = "failed to read version: %v"
	DoctorVersionNoManager   = "cannot check (no package manager detected)"
	DoctorVersionSourceFmt   = "from %s"

	DoctorMatchOKFmt       = "current Python %s matches %s"
	DoctorMatchMismatchFmt = "current Python %s does not match required %s"
	DoctorMatchUnknown     = "cannot determine current Python version"
	DoctorMatchNoVersion   = "cannot check (no Python version resolved)"

	DoctorPackageInstalledFmt = "%s is installed"
	DoctorPackageMissingFmt   = "%s is NOT installed"

	DoctorConfigExistsFmt   = "%s exists"
	DoctorConfigManagedFmt  = "%s exists (matches managed template)"
	DoctorConfigModifiedFmt = "%s exists (differs from managed template)"
	DoctorConfigMissingFmt  = "%s not found"
	DoctorConfigInvalidFmt  = "%v"
	DoctorConfigReadFmt     = "failed to read %s: %v"

	DoctorHooksInstalledFmt = "pre-commit hooks installed in %s"
	DoctorHooksMissingFmt   = "pre-commit hooks NOT installed in %s"
	DoctorHooksFailedFmt    = "cannot locate git hooks: %v"

	DoctorRecommendInit = "Run 'pc-onboard init' to fix."
	DoctorRecommendMise = "Install mise and make sure it is on PATH."

	DoctorStatusOKLabel   = "✓"
	DoctorStatusFailLabel = "✗"
	DoctorResultLineFmt   = "  %s %s: "
	DoctorSourceLineFmt   = "      (%s)\n"
	DoctorRecommendFmt    = "      -> %s\n"
	DoctorFailureSummary  = "Some checks failed. Run 'pc-onboard init' to set up the repository."
)
