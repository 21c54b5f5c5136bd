// Package tooling builds the package-manager specific commands used during onboarding.
package tooling

import (
	"fmt"

	"github.com/conn-castle/pc-onboard/internal/detect"
	"github.com/conn-castle/pc-onboard/internal/messages"
)

// DevPackages are the development packages installed into every repository.
var DevPackages = []string{"ruff", "sqlfluff", "pre-commit"}

// UnsupportedManagerError reports a manager tag outside the supported set.
type UnsupportedManagerError struct {
	Manager string
}

func (e *UnsupportedManagerError) Error() string {
	return fmt.Sprintf(messages.ToolingUnsupportedFmt, e.Manager)
}

// Tooling builds argv lists for one package manager.
type Tooling struct {
	manager detect.Manager
}

// ForManager returns the command builder for m.
func ForManager(m detect.Manager) (Tooling, error) {
	switch m {
	case detect.UV, detect.Pipenv:
		return Tooling{manager: m}, nil
	default:
		return Tooling{}, &UnsupportedManagerError{Manager: string(m)}
	}
}

// Manager returns the package manager the commands target.
func (t Tooling) Manager() detect.Manager {
	return t.manager
}

// DevInstallCommands returns the commands that add packages as dev dependencies, in order.
func (t Tooling) DevInstallCommands(packages []string) [][]string {
	switch t.manager {
	case detect.UV:
		add := append([]string{"uv", "add", "--dev"}, packages...)
		return [][]string{add, {"uv", "sync"}}
	case detect.Pipenv:
		install := append([]string{"pipenv", "install", "--dev"}, packages...)
		return [][]string{install}
	default:
		return nil
	}
}

// HookInstallCommand returns the command that installs the pre-commit git hook.
func (t Tooling) HookInstallCommand() []string {
	return t.Wrap("pre-commit", "install")
}

// RunAllCommand returns the command that runs every hook against every file.
func (t Tooling) RunAllCommand() []string {
	return t.Wrap("pre-commit", "run", "--all-files")
}

// Wrap prefixes cmd so it runs inside the manager's environment.
func (t Tooling) Wrap(cmd ...string) []string {
	switch t.manager {
	case detect.UV:
		return append([]string{"uv", "run"}, cmd...)
	case detect.Pipenv:
		return append([]string{"pipenv", "run"}, cmd...)
	default:
		return nil
	}
}
