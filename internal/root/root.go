// Package root locates the repository being onboarded and its git hooks directory.
package root

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/pc-onboard/internal/detect"
	"github.com/conn-castle/pc-onboard/internal/messages"
)

const (
	gitDirName      = ".git"
	hooksDirName    = "hooks"
	coreSection     = "core"
	hooksPathOption = "hooksPath"
)

// ResolveRepoRoot turns a user-supplied root into an absolute directory.
// An empty flag selects cwd when it holds a package manager marker, otherwise the
// git work tree enclosing cwd, or cwd when there is none.
func ResolveRepoRoot(flag string, cwd string) (string, error) {
	if strings.TrimSpace(flag) == "" {
		abs, err := filepath.Abs(cwd)
		if err != nil {
			return "", fmt.Errorf(messages.RootRepoRootFmt, cwd, err)
		}
		if _, err := detect.DetectManager(abs); err == nil {
			return abs, nil
		}
		return FindRepoRoot(abs)
	}
	expanded, err := homedir.Expand(flag)
	if err != nil {
		return "", fmt.Errorf(messages.RootExpandFmt, flag, err)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(cwd, expanded)
	}
	abs := filepath.Clean(expanded)
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf(messages.RootRepoRootFmt, abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf(messages.RootNotADirFmt, abs)
	}
	return abs, nil
}

// FindRepoRoot returns the work tree root of the git repository containing start.
// When start is not inside a repository, start itself is returned.
func FindRepoRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf(messages.RootRepoRootFmt, start, err)
	}
	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return abs, nil
		}
		return "", fmt.Errorf(messages.RootOpenRepoFmt, abs, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no work tree to onboard.
		return abs, nil
	}
	return worktree.Filesystem.Root(), nil
}

// HooksDir returns the directory git runs hooks from for the repository at root.
// core.hooksPath wins when set; relative values resolve against the work tree top level.
// A root that is not a git repository yields root/.git/hooks.
func HooksDir(root string) (string, error) {
	fallback := filepath.Join(root, gitDirName, hooksDirName)
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return fallback, nil
		}
		return "", fmt.Errorf(messages.RootOpenRepoFmt, root, err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return "", fmt.Errorf(messages.RootGitConfigFmt, root, err)
	}
	if hooksPath := strings.TrimSpace(cfg.Raw.Section(coreSection).Option(hooksPathOption)); hooksPath != "" {
		expanded, err := homedir.Expand(hooksPath)
		if err != nil {
			return "", fmt.Errorf(messages.RootExpandFmt, hooksPath, err)
		}
		if !filepath.IsAbs(expanded) {
			base := root
			if worktree, err := repo.Worktree(); err == nil {
				base = worktree.Filesystem.Root()
			}
			expanded = filepath.Join(base, expanded)
		}
		return filepath.Clean(expanded), nil
	}

	if storage, ok := repo.Storer.(*filesystem.Storage); ok {
		return filepath.Join(storage.Filesystem().Root(), hooksDirName), nil
	}
	return fallback, nil
}
