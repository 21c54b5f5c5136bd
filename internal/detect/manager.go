// Package detect inspects a repository root to decide which Python package
// manager it uses and which Python version it declares.
package detect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/conn-castle/pc-onboard/internal/messages"
)

// Manager identifies a supported Python package manager.
type Manager string

const (
	// UV is selected by a uv.lock file.
	UV Manager = "uv"
	// Pipenv is selected by a Pipfile or Pipfile.lock.
	Pipenv Manager = "pipenv"
)

// Marker files, in the order they are consulted.
const (
	UVLockFile        = "uv.lock"
	PipfileLock       = "Pipfile.lock"
	Pipfile           = "Pipfile"
	PyprojectFile     = "pyproject.toml"
	PythonVersionFile = ".python-version"
	ToolVersionsFile  = ".tool-versions"
)

// String returns the manager tag.
func (m Manager) String() string {
	return string(m)
}

// Valid reports whether m is one of the supported managers.
func (m Manager) Valid() bool {
	return m == UV || m == Pipenv
}

// DetectionError reports that no package manager marker exists in Root.
type DetectionError struct {
	Root string
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf(messages.DetectNoManagerFmt, e.Root)
}

// DetectManager decides which package manager root uses.
// A uv.lock always wins; otherwise Pipfile.lock or Pipfile selects pipenv.
func DetectManager(root string) (Manager, error) {
	return DetectManagerFS(os.DirFS(root), root)
}

// DetectManagerFS is DetectManager over an arbitrary filesystem.
// root is only used in error messages.
func DetectManagerFS(fsys fs.FS, root string) (Manager, error) {
	found, err := fileExists(fsys, UVLockFile)
	if err != nil {
		return "", err
	}
	if found {
		return UV, nil
	}
	for _, marker := range []string{PipfileLock, Pipfile} {
		found, err := fileExists(fsys, marker)
		if err != nil {
			return "", err
		}
		if found {
			return Pipenv, nil
		}
	}
	return "", &DetectionError{Root: root}
}

// fileExists reports whether name exists as a regular file (or symlink to one).
func fileExists(fsys fs.FS, name string) (bool, error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.DetectStatFmt, name, err)
	}
	return !info.IsDir(), nil
}
