// Package onboard runs the end-to-end onboarding workflow for a repository.
package onboard

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/pc-onboard/internal/detect"
	"github.com/conn-castle/pc-onboard/internal/install"
	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/provision"
	"github.com/conn-castle/pc-onboard/internal/runner"
	"github.com/conn-castle/pc-onboard/internal/tooling"
)

// Options configures Run.
type Options struct {
	Exec   runner.Executor
	Logger *log.Logger
	// Packages are installed as dev dependencies; nil means tooling.DevPackages.
	Packages []string
	// MiseBin overrides the mise executable.
	MiseBin string

	// RunAll is the explicit run-all choice; nil defers to prompting.
	RunAll      *bool
	Prompt      bool
	Interactive bool
	Prompter    Prompter

	// Install configures the config writer. A nil System means install.RealSystem.
	Install install.Options
}

// Summary describes what Run did.
type Summary struct {
	Manager   detect.Manager
	Python    detect.Version
	HasPython bool
	Config    install.Written
	RanAll    bool
	// ExitCode is the run-all exit code, or 0 when it did not run.
	ExitCode int
}

// Run onboards the repository at root:
// detect the manager, resolve and provision Python, install dev dependencies,
// write the managed config, install the hook, and optionally run every hook.
// Steps stop at the first error and nothing is rolled back.
func Run(ctx context.Context, root string, opts Options) (Summary, error) {
	if opts.Exec == nil {
		return Summary{}, errors.New(messages.OnboardRunnerRequired)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	packages := opts.Packages
	if packages == nil {
		packages = tooling.DevPackages
	}

	var summary Summary
	manager, err := detect.DetectManager(root)
	if err != nil {
		return summary, err
	}
	summary.Manager = manager
	logger.Info(messages.OnboardDetectedManager, "manager", manager)

	version, ok, err := detect.PythonVersion(root, manager)
	if err != nil {
		return summary, err
	}
	summary.Python, summary.HasPython = version, ok
	if ok {
		logger.Info(messages.OnboardResolvedPython, "version", version.Value, "source", version.Source)
	}

	prov := &provision.Provisioner{Exec: opts.Exec, Logger: logger, Mise: opts.MiseBin, Dir: root}
	if err := prov.EnsurePython(ctx, version.Value, ok); err != nil {
		return summary, err
	}

	tools, err := tooling.ForManager(manager)
	if err != nil {
		return summary, err
	}
	logger.Info(messages.OnboardInstallingDeps, "packages", packages)
	for _, args := range tools.DevInstallCommands(packages) {
		if _, err := opts.Exec.Run(ctx, runner.Request{Args: args, Dir: root}); err != nil {
			return summary, err
		}
	}

	installOpts := opts.Install
	if installOpts.System == nil {
		installOpts.System = install.RealSystem{}
	}
	if installOpts.Logger == nil {
		installOpts.Logger = logger
	}
	written, err := install.WritePreCommitConfig(root, installOpts)
	if err != nil {
		return summary, err
	}
	summary.Config = written

	logger.Info(messages.OnboardInstallingHooks)
	if _, err := opts.Exec.Run(ctx, runner.Request{Args: tools.HookInstallCommand(), Dir: root}); err != nil {
		return summary, err
	}

	if !DecideRunAll(opts.RunAll, opts.Prompt, opts.Interactive, opts.Prompter) {
		return summary, nil
	}
	logger.Info(messages.OnboardRunningAll)
	res, err := opts.Exec.Run(ctx, runner.Request{Args: tools.RunAllCommand(), Dir: root, AllowFailure: true})
	if err != nil {
		return summary, err
	}
	summary.RanAll = true
	summary.ExitCode = res.ExitCode
	return summary, nil
}
