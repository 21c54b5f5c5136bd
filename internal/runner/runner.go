// Package runner executes external commands for pc-onboard.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/pc-onboard/internal/messages"
)

var execCommandContext = exec.CommandContext

// Request describes a single command invocation.
type Request struct {
	// Args is the argv; Args[0] is resolved on PATH.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Capture collects stdout and stderr instead of streaming them.
	Capture bool
	// AllowFailure returns a non-zero exit as a Result rather than an error.
	AllowFailure bool
}

// Result is the outcome of a finished command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor runs commands. Runner is the production implementation.
type Executor interface {
	Run(ctx context.Context, req Request) (Result, error)
}

// Error reports a command that exited non-zero.
type Error struct {
	Cmd      []string
	ExitCode int
	Stderr   string
}

func (e *Error) Error() string {
	cmd := strings.Join(e.Cmd, " ")
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		return fmt.Sprintf(messages.RunnerExitStderrFmt, cmd, e.ExitCode, stderr)
	}
	return fmt.Sprintf(messages.RunnerExitFmt, cmd, e.ExitCode)
}

// Runner runs commands on the host.
type Runner struct {
	Logger *log.Logger
	Stdout io.Writer
	Stderr io.Writer
	// Echo prints each command before it runs.
	Echo bool
}

// New returns a Runner streaming child output to stdout and stderr.
// Nil writers discard the output.
func New(logger *log.Logger, stdout io.Writer, stderr io.Writer, echo bool) *Runner {
	return &Runner{Logger: logger, Stdout: stdout, Stderr: stderr, Echo: echo}
}

// Run executes req and waits for it to finish.
// A binary that cannot be started is returned as a wrapped exec error.
func (r *Runner) Run(ctx context.Context, req Request) (Result, error) {
	if len(req.Args) == 0 {
		return Result{}, errors.New(messages.RunnerEmptyCommand)
	}
	display := strings.Join(req.Args, " ")
	if r.Echo {
		_, _ = fmt.Fprintf(r.stdout(), messages.RunnerEchoFmt+"\n", display)
	}
	if r.Logger != nil {
		r.Logger.Debug("running command", "cmd", display, "dir", req.Dir, "capture", req.Capture)
	}

	cmd := execCommandContext(ctx, req.Args[0], req.Args[1:]...)
	cmd.Dir = req.Dir

	var stdout, stderr bytes.Buffer
	if req.Capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = r.stdout()
		cmd.Stderr = io.MultiWriter(r.stderr(), &stderr)
	}

	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return Result{ExitCode: -1}, fmt.Errorf(messages.RunnerStartFailedFmt, req.Args[0], err)
	}
	result.ExitCode = exitErr.ExitCode()
	if r.Logger != nil {
		r.Logger.Debug("command exited", "cmd", display, "code", result.ExitCode)
	}
	if req.AllowFailure {
		return result, nil
	}
	return result, &Error{Cmd: append([]string(nil), req.Args...), ExitCode: result.ExitCode, Stderr: result.Stderr}
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return io.Discard
	}
	return r.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return io.Discard
	}
	return r.Stderr
}
