// Package doctor inspects a repository and its environment without changing anything.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/conn-castle/pc-onboard/internal/detect"
	"github.com/conn-castle/pc-onboard/internal/install"
	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/root"
	"github.com/conn-castle/pc-onboard/internal/runner"
	"github.com/conn-castle/pc-onboard/internal/specifier"
)

const (
	preCommitBinary = "pre-commit"
	hookFileName    = "pre-commit"
	importProbeFmt  = "import importlib.util, sys; sys.exit(0 if importlib.util.find_spec(%q) else 1)"
)

// Deps are the collaborators doctor needs.
type Deps struct {
	System    System
	Exec      runner.Executor
	Packages  []string
	MiseBin   string
	PythonBin string
	// HooksDir locates the git hooks directory; nil means root.HooksDir.
	HooksDir func(root string) (string, error)
}

// Run executes every check against repoRoot and returns the results in a fixed order:
// mise, package manager, Python version, Python match, one check per package,
// pre-commit config, pre-commit hooks.
func Run(ctx context.Context, repoRoot string, deps Deps) []Result {
	deps = withDefaults(deps)
	results := make([]Result, 0, 6+len(deps.Packages))

	results = append(results, CheckMise(deps.System, deps.MiseBin))

	managerResult, manager, hasManager := CheckPackageManager(repoRoot)
	results = append(results, managerResult)

	versionResult, version, hasVersion := CheckPythonVersion(repoRoot, manager, hasManager)
	results = append(results, versionResult)

	results = append(results, CheckPythonMatch(ctx, deps.Exec, repoRoot, deps.PythonBin, version, hasVersion))

	for _, pkg := range deps.Packages {
		results = append(results, CheckPackage(ctx, deps.System, deps.Exec, repoRoot, deps.PythonBin, pkg))
	}

	results = append(results, CheckConfig(deps.System, repoRoot))
	results = append(results, CheckHooks(deps.System, repoRoot, deps.HooksDir))
	return results
}

func withDefaults(deps Deps) Deps {
	if deps.System == nil {
		deps.System = RealSystem{}
	}
	if deps.MiseBin == "" {
		deps.MiseBin = "mise"
	}
	if deps.PythonBin == "" {
		deps.PythonBin = "python"
	}
	if deps.HooksDir == nil {
		deps.HooksDir = root.HooksDir
	}
	return deps
}

// CheckMise reports whether the mise binary is on PATH.
func CheckMise(sys System, mise string) Result {
	path, err := sys.LookPath(mise)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameMise,
			Message:        messages.DoctorMiseMissing,
			Recommendation: messages.DoctorRecommendMise,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameMise,
		Message:   fmt.Sprintf(messages.DoctorMiseFoundFmt, path),
	}
}

// CheckPackageManager reports the detected package manager.
func CheckPackageManager(repoRoot string) (Result, detect.Manager, bool) {
	manager, err := detect.DetectManager(repoRoot)
	if err != nil {
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNamePackageManager,
			Message:   fmt.Sprintf(messages.DoctorManagerMissingFmt, err),
		}, "", false
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePackageManager,
		Message:   fmt.Sprintf(messages.DoctorManagerDetectedFmt, manager),
	}, manager, true
}

// CheckPythonVersion reports the Python version the repository declares and where it came from.
func CheckPythonVersion(repoRoot string, manager detect.Manager, hasManager bool) (Result, string, bool) {
	result := Result{CheckName: messages.DoctorCheckNamePythonVersion, Status: StatusFail}
	if !hasManager {
		result.Message = messages.DoctorVersionNoManager
		return result, "", false
	}
	version, ok, err := detect.PythonVersion(repoRoot, manager)
	switch {
	case err != nil:
		result.Message = fmt.Sprintf(messages.DoctorVersionFailedFmt, err)
		return result, "", false
	case !ok:
		result.Message = messages.DoctorVersionNotFound
		return result, "", false
	}
	result.Status = StatusOK
	result.Message = fmt.Sprintf(messages.DoctorVersionResolvedFmt, version.Value)
	result.Source = fmt.Sprintf(messages.DoctorVersionSourceFmt, version.Source)
	return result, version.Value, true
}

// CheckPythonMatch compares the interpreter on PATH with the required version at minor granularity.
// python runs in repoRoot so version shims resolve the repository's interpreter.
func CheckPythonMatch(ctx context.Context, exec runner.Executor, repoRoot string, python string, required string, hasRequired bool) Result {
	result := Result{CheckName: messages.DoctorCheckNamePythonMatch, Status: StatusFail}
	if !hasRequired {
		result.Message = messages.DoctorMatchNoVersion
		return result
	}
	current, ok := currentPythonVersion(ctx, exec, repoRoot, python)
	if !ok {
		result.Message = messages.DoctorMatchUnknown
		return result
	}
	if !specifier.SameMinor(current, required) {
		result.Message = fmt.Sprintf(messages.DoctorMatchMismatchFmt, current, required)
		result.Recommendation = messages.DoctorRecommendInit
		return result
	}
	result.Status = StatusOK
	result.Message = fmt.Sprintf(messages.DoctorMatchOKFmt, current, required)
	return result
}

// currentPythonVersion parses "Python X.Y.Z" from `python --version`.
func currentPythonVersion(ctx context.Context, exec runner.Executor, dir string, python string) (string, bool) {
	if exec == nil {
		return "", false
	}
	res, err := exec.Run(ctx, runner.Request{Args: []string{python, "--version"}, Dir: dir, Capture: true})
	if err != nil {
		return "", false
	}
	// Python 2 printed its version on stderr.
	out := strings.TrimSpace(res.Stdout)
	if out == "" {
		out = strings.TrimSpace(res.Stderr)
	}
	fields := strings.Fields(out)
	if len(fields) < 2 || fields[0] != "Python" {
		return "", false
	}
	return fields[1], true
}

// CheckPackage reports whether a dev package is available.
// pre-commit is looked up as an executable; everything else must be importable by python.
func CheckPackage(ctx context.Context, sys System, exec runner.Executor, repoRoot string, python string, pkg string) Result {
	result := Result{
		Status:    StatusFail,
		CheckName: fmt.Sprintf(messages.DoctorCheckNamePackageFmt, pkg),
		Message:   fmt.Sprintf(messages.DoctorPackageMissingFmt, pkg),
	}
	if packageAvailable(ctx, sys, exec, repoRoot, python, pkg) {
		result.Status = StatusOK
		result.Message = fmt.Sprintf(messages.DoctorPackageInstalledFmt, pkg)
	} else {
		result.Recommendation = messages.DoctorRecommendInit
	}
	return result
}

func packageAvailable(ctx context.Context, sys System, exec runner.Executor, dir string, python string, pkg string) bool {
	if pkg == preCommitBinary {
		_, err := sys.LookPath(preCommitBinary)
		return err == nil
	}
	if exec == nil {
		return false
	}
	module := strings.ReplaceAll(pkg, "-", "_")
	res, err := exec.Run(ctx, runner.Request{
		Args:         []string{python, "-c", fmt.Sprintf(importProbeFmt, module)},
		Dir:          dir,
		Capture:      true,
		AllowFailure: true,
	})
	return err == nil && res.ExitCode == 0
}

// CheckConfig reports whether the pre-commit config exists and whether it is the managed template.
func CheckConfig(sys System, repoRoot string) Result {
	path := install.ConfigPath(repoRoot)
	result := Result{CheckName: messages.DoctorCheckNameConfig, Status: StatusFail}
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Message = fmt.Sprintf(messages.DoctorConfigMissingFmt, install.ConfigFileName)
			result.Recommendation = messages.DoctorRecommendInit
			return result
		}
		result.Message = fmt.Sprintf(messages.DoctorConfigReadFmt, install.ConfigFileName, err)
		return result
	}
	if err := install.ValidateYAML(install.ConfigFileName, data); err != nil {
		result.Message = fmt.Sprintf(messages.DoctorConfigInvalidFmt, err)
		result.Recommendation = messages.DoctorRecommendInit
		return result
	}
	result.Status = StatusOK
	switch {
	case install.MatchesTemplate(data):
		result.Message = fmt.Sprintf(messages.DoctorConfigManagedFmt, install.ConfigFileName)
	case install.IsManaged(data):
		result.Message = fmt.Sprintf(messages.DoctorConfigModifiedFmt, install.ConfigFileName)
	default:
		result.Message = fmt.Sprintf(messages.DoctorConfigExistsFmt, install.ConfigFileName)
	}
	return result
}

// CheckHooks reports whether the pre-commit hook is installed in the git hooks directory.
func CheckHooks(sys System, repoRoot string, hooksDir func(string) (string, error)) Result {
	result := Result{CheckName: messages.DoctorCheckNameHooks, Status: StatusFail}
	dir, err := hooksDir(repoRoot)
	if err != nil {
		result.Message = fmt.Sprintf(messages.DoctorHooksFailedFmt, err)
		return result
	}
	display := displayPath(repoRoot, dir)
	if _, err := sys.Stat(filepath.Join(dir, hookFileName)); err != nil {
		result.Message = fmt.Sprintf(messages.DoctorHooksMissingFmt, display)
		result.Recommendation = messages.DoctorRecommendInit
		return result
	}
	result.Status = StatusOK
	result.Message = fmt.Sprintf(messages.DoctorHooksInstalledFmt, display)
	return result
}

// displayPath shows dir relative to repoRoot when it lives inside it.
func displayPath(repoRoot string, dir string) string {
	rel, err := filepath.Rel(repoRoot, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return dir
	}
	return filepath.ToSlash(rel)
}
