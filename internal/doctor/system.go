package doctor

import (
	"os"
	"os/exec"
)

// System abstracts the host lookups doctor performs.
// This interface is package-local so tests can fake PATH and filesystem state.
type System interface {
	LookPath(file string) (string, error)
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// LookPath searches PATH for an executable named file.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}
