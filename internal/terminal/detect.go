// Package terminal reports whether pc-onboard can talk to a user.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin is a terminal, so a prompt can be answered.
func IsInteractive() bool {
	return IsTerminal(os.Stdin)
}

// IsTerminal reports whether f is attached to a terminal. A nil file never is.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
