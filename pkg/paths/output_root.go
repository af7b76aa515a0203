package paths

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/MacroPower/bookredirect/pkg/redirecterrors"
)

// ResolveOutputRoot returns the absolute output root for output. Absolute
// values are returned cleaned. Relative values are joined to the repository
// root enclosing wd, or to wd itself when wd is not inside a repository.
func ResolveOutputRoot(wd, output string) (string, error) {
	if filepath.IsAbs(output) {
		return filepath.Clean(output), nil
	}

	base, err := FindRepoRoot(wd)
	if errors.Is(err, redirecterrors.ErrFileNotFound) {
		slog.Debug("no repository root found, using working directory", slog.String("path", wd))

		base, err = filepath.Abs(wd)
	}

	if err != nil {
		return "", fmt.Errorf("resolve output root: %w", err)
	}

	return filepath.Join(base, output), nil
}

// Within joins the slash-separated relative path rel to root and returns the
// result, or [redirecterrors.ErrResolvedOutsideRoot] if it would escape root.
func Within(root, rel string) (string, error) {
	p := filepath.Join(root, filepath.FromSlash(rel))

	r, err := filepath.Rel(root, p)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", redirecterrors.ErrResolvedOutsideRoot, rel, err)
	}

	if r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", redirecterrors.ErrResolvedOutsideRoot, rel)
	}

	return p, nil
}
