package paths

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MacroPower/bookredirect/pkg/redirecterrors"
)

// FindRepoRoot returns the innermost git repository root enclosing path,
// searching upward toward the filesystem root. A directory qualifies when it
// holds a `.git` directory with a `HEAD` file, or a `.git` file (as written
// for worktrees) whose gitdir holds a `HEAD` file.
func FindRepoRoot(path string) (string, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("get absolute path: %w", err)
	}

	for {
		if isRepoRoot(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", fmt.Errorf("%s: %w", filepath.Join(".git", "HEAD"), redirecterrors.ErrFileNotFound)
}

func isRepoRoot(dir string) bool {
	dotGit := filepath.Join(dir, ".git")

	fi, err := os.Lstat(dotGit)
	if err != nil {
		return false
	}

	gitDir := dotGit
	if !fi.IsDir() {
		gitDir, err = readGitFile(dotGit, dir)
		if err != nil {
			return false
		}
	}

	head, err := os.Lstat(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return false
	}

	return !head.IsDir()
}

// readGitFile resolves the `gitdir: <path>` line of a worktree `.git` file.
// Relative paths are resolved against baseDir.
func readGitFile(dotGitPath, baseDir string) (string, error) {
	f, err := os.Open(dotGitPath) //nolint:gosec // dotGitPath is built with filepath.Join.
	if err != nil {
		return "", fmt.Errorf("open git file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Best-effort close.

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", errors.New("empty git file")
	}

	gitDir, found := strings.CutPrefix(strings.TrimSpace(scanner.Text()), "gitdir: ")
	if !found {
		return "", errors.New("missing gitdir prefix")
	}

	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(baseDir, gitDir)
	}

	return filepath.Clean(gitDir), nil
}
