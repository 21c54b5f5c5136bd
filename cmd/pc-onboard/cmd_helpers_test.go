package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/conn-castle/pc-onboard/internal/config"
)

// isolateConfig keeps the user config and PC_ONBOARD_ variables out of the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PC_ONBOARD_DEV_PACKAGES",
		"PC_ONBOARD_NO_PROMPT",
		"PC_ONBOARD_VERBOSE",
		"PC_ONBOARD_MISE_BIN",
		"PC_ONBOARD_PYTHON_BIN",
	} {
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("unset %s: %v", name, err)
		}
	}
	orig := loadConfig
	t.Cleanup(func() { loadConfig = orig })
	loadConfig = func(root string) (*config.Config, error) {
		return config.LoadPaths(config.Paths{ProjectConfig: filepath.Join(root, config.ProjectConfigName)})
	}
}

// runCmd executes the root command with args and returns stdout, stderr, and the error.
func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"pc-onboard"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}
