package root

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
)

func initRepo(t *testing.T, dir string) *git.Repository {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("git init: %v", err)
	}
	return repo
}

func TestFindRepoRootUsesGit(t *testing.T) {
	root := t.TempDir()
	initRepo(t, root)
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir sub: %v", err)
	}

	got, err := FindRepoRoot(sub)
	if err != nil {
		t.Fatalf("FindRepoRoot error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root %s, got %s", root, got)
	}
}

func TestFindRepoRootWithoutGit(t *testing.T) {
	dir := t.TempDir()
	got, err := FindRepoRoot(dir)
	if err != nil {
		t.Fatalf("FindRepoRoot error: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %s, got %s", dir, got)
	}
}

func TestResolveRepoRootFlag(t *testing.T) {
	cwd := t.TempDir()
	target := filepath.Join(cwd, "project")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := ResolveRepoRoot("project", cwd)
	if err != nil {
		t.Fatalf("ResolveRepoRoot error: %v", err)
	}
	if got != target {
		t.Fatalf("expected %s, got %s", target, got)
	}

	got, err = ResolveRepoRoot(target+"/", "/elsewhere")
	if err != nil {
		t.Fatalf("ResolveRepoRoot error: %v", err)
	}
	if got != target {
		t.Fatalf("expected %s, got %s", target, got)
	}
}

func TestResolveRepoRootEmptyFlagFindsRepo(t *testing.T) {
	root := t.TempDir()
	initRepo(t, root)
	sub := filepath.Join(root, "pkg")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := ResolveRepoRoot("", sub)
	if err != nil {
		t.Fatalf("ResolveRepoRoot error: %v", err)
	}
	if got != root {
		t.Fatalf("expected %s, got %s", root, got)
	}
}

func TestResolveRepoRootHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := os.Mkdir(filepath.Join(home, "repo"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, err := ResolveRepoRoot("~/repo", "/")
	if err != nil {
		t.Fatalf("ResolveRepoRoot error: %v", err)
	}
	if got != filepath.Join(home, "repo") {
		t.Fatalf("expected home-relative root, got %s", got)
	}
}

func TestResolveRepoRootErrors(t *testing.T) {
	cwd := t.TempDir()
	if _, err := ResolveRepoRoot("missing", cwd); err == nil {
		t.Fatalf("expected error for missing root")
	}
	file := filepath.Join(cwd, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ResolveRepoRoot(file, cwd); err == nil {
		t.Fatalf("expected error for file root")
	}
}

func TestHooksDirDefault(t *testing.T) {
	root := t.TempDir()
	initRepo(t, root)

	got, err := HooksDir(root)
	if err != nil {
		t.Fatalf("HooksDir error: %v", err)
	}
	if got != filepath.Join(root, ".git", "hooks") {
		t.Fatalf("unexpected hooks dir %s", got)
	}
}

func TestHooksDirNotARepo(t *testing.T) {
	root := t.TempDir()
	got, err := HooksDir(root)
	if err != nil {
		t.Fatalf("HooksDir error: %v", err)
	}
	if got != filepath.Join(root, ".git", "hooks") {
		t.Fatalf("unexpected hooks dir %s", got)
	}
}

func TestHooksDirCoreHooksPath(t *testing.T) {
	tests := []struct {
		name  string
		value func(root string) string
		want  func(root string) string
	}{
		{
			name:  "relative",
			value: func(string) string { return ".githooks" },
			want:  func(root string) string { return filepath.Join(root, ".githooks") },
		},
		{
			name:  "absolute",
			value: func(string) string { return "/opt/hooks" },
			want:  func(string) string { return "/opt/hooks" },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			repo := initRepo(t, root)
			cfg, err := repo.Config()
			if err != nil {
				t.Fatalf("config: %v", err)
			}
			cfg.Raw.Section("core").SetOption("hooksPath", tt.value(root))
			if err := repo.SetConfig(cfg); err != nil {
				t.Fatalf("set config: %v", err)
			}

			got, err := HooksDir(root)
			if err != nil {
				t.Fatalf("HooksDir error: %v", err)
			}
			if got != tt.want(root) {
				t.Fatalf("expected %s, got %s", tt.want(root), got)
			}
		})
	}
}

func TestResolveRepoRootEmptyFlagKeepsProjectDir(t *testing.T) {
	top := t.TempDir()
	initRepo(t, top)
	project := filepath.Join(top, "services", "api")
	if err := os.MkdirAll(project, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(project, "uv.lock"), nil, 0o644); err != nil {
		t.Fatalf("write uv.lock: %v", err)
	}

	got, err := ResolveRepoRoot("", project)
	if err != nil {
		t.Fatalf("ResolveRepoRoot error: %v", err)
	}
	if got != project {
		t.Fatalf("expected %s, got %s", project, got)
	}

	// A directory without markers still walks up to the work tree.
	other := filepath.Join(top, "services")
	got, err = ResolveRepoRoot("", other)
	if err != nil {
		t.Fatalf("ResolveRepoRoot error: %v", err)
	}
	if got != top {
		t.Fatalf("expected %s, got %s", top, got)
	}
}

func TestHooksDirRelativeHooksPathFromSubdirectory(t *testing.T) {
	top := t.TempDir()
	repo := initRepo(t, top)
	cfg, err := repo.Config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Raw.Section("core").SetOption("hooksPath", ".githooks")
	if err := repo.SetConfig(cfg); err != nil {
		t.Fatalf("set config: %v", err)
	}
	sub := filepath.Join(top, "services", "api")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := HooksDir(sub)
	if err != nil {
		t.Fatalf("HooksDir error: %v", err)
	}
	want := filepath.Join(top, ".githooks")
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
