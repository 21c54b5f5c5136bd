package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/pc-onboard/internal/tooling"
)

func writeYAML(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPathsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadPaths(Paths{
		UserConfig:    filepath.Join(dir, "missing-user.yaml"),
		ProjectConfig: filepath.Join(dir, "missing-project.yaml"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ruff", "sqlfluff", "pre-commit"}, cfg.DevPackages)
	assert.False(t, cfg.NoPrompt)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "mise", cfg.MiseBin)
	assert.Equal(t, "python", cfg.PythonBin)
}

func TestLoadPathsLayering(t *testing.T) {
	dir := t.TempDir()
	user := writeYAML(t, dir, "user/config.yaml", "mise_bin: /opt/mise/bin/mise\nverbose: true\n")
	project := writeYAML(t, dir, "repo/"+ProjectConfigName, "dev_packages:\n  - ruff\n  - pre-commit\nverbose: false\n")

	cfg, err := LoadPaths(Paths{UserConfig: user, ProjectConfig: project})
	require.NoError(t, err)
	assert.Equal(t, []string{"ruff", "pre-commit"}, cfg.DevPackages)
	assert.Equal(t, "/opt/mise/bin/mise", cfg.MiseBin)
	assert.False(t, cfg.Verbose)
}

func TestLoadPathsEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	project := writeYAML(t, dir, ProjectConfigName, "python_bin: python3.11\n")
	t.Setenv("PC_ONBOARD_PYTHON_BIN", "python3.12")
	t.Setenv("PC_ONBOARD_DEV_PACKAGES", "ruff, pre-commit")
	t.Setenv("PC_ONBOARD_NO_PROMPT", "true")

	cfg, err := LoadPaths(Paths{ProjectConfig: project})
	require.NoError(t, err)
	assert.Equal(t, "python3.12", cfg.PythonBin)
	assert.Equal(t, []string{"ruff", "pre-commit"}, cfg.DevPackages)
	assert.True(t, cfg.NoPrompt)
}

func TestLoadPathsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	project := writeYAML(t, dir, ProjectConfigName, "dev_packages: [ruff\n")

	_, err := LoadPaths(Paths{ProjectConfig: project})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
	assert.Contains(t, err.Error(), project)
}

func TestLoadPathsValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{name: "empty package list", content: "dev_packages: []\n", wantMsg: "at least one package"},
		{name: "blank package", content: "dev_packages:\n  - ruff\n  - \"  \"\n", wantMsg: "dev_packages[1]"},
		{name: "blank mise", content: "mise_bin: \"\"\n", wantMsg: "mise_bin"},
		{name: "blank python", content: "python_bin: \"\"\n", wantMsg: "python_bin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			project := writeYAML(t, dir, ProjectConfigName, tt.content)
			_, err := LoadPaths(Paths{ProjectConfig: project})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadUsesRepoRoot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	repo := t.TempDir()
	writeYAML(t, repo, ProjectConfigName, "no_prompt: true\n")

	cfg, err := Load(repo)
	require.NoError(t, err)
	assert.True(t, cfg.NoPrompt)
}

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths("/repo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/repo", ProjectConfigName), paths.ProjectConfig)
	assert.Equal(t, "config.yaml", filepath.Base(paths.UserConfig))
	assert.Equal(t, "pc-onboard", filepath.Base(filepath.Dir(paths.UserConfig)))
}

func TestSplitPackages(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitPackages([]string{"a, b", " c "}))
	assert.Empty(t, splitPackages(nil))
}

func TestEnvTransform(t *testing.T) {
	assert.Equal(t, "dev_packages", envTransform("PC_ONBOARD_DEV_PACKAGES"))
}

func TestDefaultPackagesFollowTooling(t *testing.T) {
	cfg, err := LoadPaths(Paths{})
	require.NoError(t, err)
	assert.Equal(t, tooling.DevPackages, cfg.DevPackages)

	cfg.DevPackages[0] = "changed"
	assert.NotEqual(t, "changed", tooling.DevPackages[0])
}
