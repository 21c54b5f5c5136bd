package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"pc-onboard", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"pc-onboard", "unknown"}, &out, &out)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"pc-onboard", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"pc-onboard", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "Error: unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMainSilentExit(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return &SilentExitError{Code: 3}
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"pc-onboard", "init"}, &out, &out, func(c int) { code = c })
	if code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"pc-onboard", "--version"}
	main()
}

func TestRunMain_GetwdError(t *testing.T) {
	orig := getwd
	defer func() { getwd = orig }()
	getwd = func() (string, error) { return "", errors.New("getwd failed") }

	var out bytes.Buffer
	var code int
	runMain([]string{"pc-onboard", "doctor"}, &out, &out, func(c int) { code = c })

	if code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "getwd failed") {
		t.Errorf("expected output to contain 'getwd failed', got %q", out.String())
	}
}

func TestVersionString(t *testing.T) {
	origCommit, origDate := Commit, BuildDate
	t.Cleanup(func() { Commit, BuildDate = origCommit, origDate })

	Commit, BuildDate = "unknown", "unknown"
	if got := versionString(); got != Version {
		t.Fatalf("expected bare version, got %q", got)
	}

	Commit, BuildDate = "abc123", "2026-01-02"
	want := Version + " (commit abc123, built 2026-01-02)"
	if got := versionString(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSilentExitErrorMessage(t *testing.T) {
	err := SilentExitError{Code: 2}
	if err.Error() != "exit 2" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
