// Package provision installs and pins Python interpreters through mise.
package provision

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/runner"
)

// DefaultMise is the mise binary looked up on PATH.
const DefaultMise = "mise"

// Phase names the provisioning step that failed.
type Phase string

const (
	// PhaseProbe is the `mise --version` availability check.
	PhaseProbe Phase = "probe"
	// PhaseInstall is `mise install python@<version>`.
	PhaseInstall Phase = "install"
	// PhaseActivate is `mise use python@<version>`.
	PhaseActivate Phase = "activate"
)

// Error reports a failed provisioning step and wraps the command failure.
type Error struct {
	Phase   Phase
	Version string
	Err     error
}

func (e *Error) Error() string {
	switch e.Phase {
	case PhaseInstall:
		return fmt.Sprintf(messages.ProvisionInstallFailFmt, e.Version, e.Err)
	case PhaseActivate:
		return fmt.Sprintf(messages.ProvisionUseFailFmt, e.Version, e.Err)
	default:
		return messages.ProvisionNotInstalled
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Provisioner drives mise for a single repository.
type Provisioner struct {
	Exec   runner.Executor
	Logger *log.Logger
	// Mise is the mise binary; empty means DefaultMise.
	Mise string
	// Dir is the repository root every mise command runs in.
	Dir string
}

// EnsurePython installs version and pins it for Dir.
// When ok is false there is nothing to provision and a warning is logged instead.
func (p *Provisioner) EnsurePython(ctx context.Context, version string, ok bool) error {
	if !ok || version == "" {
		if p.Logger != nil {
			p.Logger.Warn(messages.ProvisionSkipped)
		}
		return nil
	}

	mise := p.Mise
	if mise == "" {
		mise = DefaultMise
	}
	if _, err := p.Exec.Run(ctx, runner.Request{Args: []string{mise, "--version"}, Dir: p.Dir, Capture: true}); err != nil {
		return &Error{Phase: PhaseProbe, Version: version, Err: err}
	}

	target := "python@" + version
	if p.Logger != nil {
		p.Logger.Info(messages.ProvisionInstalling, "version", version)
	}
	if _, err := p.Exec.Run(ctx, runner.Request{Args: []string{mise, "install", target}, Dir: p.Dir}); err != nil {
		return &Error{Phase: PhaseInstall, Version: version, Err: err}
	}
	if _, err := p.Exec.Run(ctx, runner.Request{Args: []string{mise, "use", target}, Dir: p.Dir}); err != nil {
		return &Error{Phase: PhaseActivate, Version: version, Err: err}
	}
	if p.Logger != nil {
		p.Logger.Info(messages.ProvisionPinned, "version", version)
	}
	return nil
}
