package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// ErrNoWorkspaceRoot is returned when no usable root directory can be found.
var ErrNoWorkspaceRoot = errors.New("no workspace root")

// ResolveRoot picks the directory relative paths are computed against.
// An explicit root wins and must be an existing directory. Otherwise the
// enclosing git worktree of cwd is used, falling back to cwd itself.
func ResolveRoot(explicit, cwd string) (string, error) {
	if explicit != "" {
		return existingDir(explicit)
	}
	if cwd == "" {
		return "", ErrNoWorkspaceRoot
	}

	if root, ok := gitRoot(cwd); ok {
		return root, nil
	}
	return existingDir(cwd)
}

// gitRoot returns the worktree root of the repository containing dir.
func gitRoot(dir string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree.
		return "", false
	}
	return wt.Filesystem.Root(), true
}

func existingDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoWorkspaceRoot, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoWorkspaceRoot, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrNoWorkspaceRoot, abs)
	}
	return abs, nil
}
