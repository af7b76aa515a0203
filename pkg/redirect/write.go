package redirect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/klauspost/compress/gzip"

	"github.com/MacroPower/bookredirect/pkg/paths"
	"github.com/MacroPower/bookredirect/pkg/redirecterrors"
)

const (
	dirMode  fs.FileMode = 0o755
	fileMode fs.FileMode = 0o644
)

// WritePage writes a single page below the generator's root, creating its
// directory first. Existing files are overwritten.
func (g *Generator) WritePage(ctx context.Context, page Page) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck // Cancellation is reported as-is.
	}

	file, err := paths.Within(g.Root, page.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", redirecterrors.ErrInvalidPath, err)
	}

	span := g.Tracer.StartSpan("write_page")
	span.SetBaggageItem("path", page.Path)
	defer span.Finish()

	logger := slog.With(
		slog.String("path", page.Path),
		slog.String("target", page.Target),
		slog.String("file", file),
	)

	return g.locks.Do(file, func() error {
		if err := g.ensureDir(filepath.Dir(file)); err != nil {
			return err
		}

		content := []byte(page.Render())

		logger.Debug("writing page")

		//nolint:gosec // G306: pages are served publicly.
		if err := os.WriteFile(file, content, fileMode); err != nil {
			return fmt.Errorf("%w %q: %w", redirecterrors.ErrWriteFile, file, err)
		}

		if !g.Precompress {
			return nil
		}

		gzFile := file + ".gz"

		logger.Debug("writing compressed page", slog.String("gz_file", gzFile))

		gz, err := compress(content)
		if err != nil {
			return fmt.Errorf("%w %q: %w", redirecterrors.ErrWriteFile, gzFile, err)
		}

		//nolint:gosec // G306: pages are served publicly.
		if err := os.WriteFile(gzFile, gz, fileMode); err != nil {
			return fmt.Errorf("%w %q: %w", redirecterrors.ErrWriteFile, gzFile, err)
		}

		return nil
	})
}

func (g *Generator) ensureDir(dir string) error {
	if g.Parents {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("%w %q: %w", redirecterrors.ErrCreateDir, dir, err)
		}

		return nil
	}

	fi, err := os.Stat(dir)
	switch {
	case err == nil && fi.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%w %q: %w", redirecterrors.ErrCreateDir, dir, syscall.ENOTDIR)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w %q: %w", redirecterrors.ErrCreateDir, dir, err)
	}

	if err := os.Mkdir(dir, dirMode); err != nil && !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w %q: %w", redirecterrors.ErrCreateDir, dir, err)
	}

	return nil
}

// prepareDirs creates the directory of every page in list order, one level
// at a time. It returns the directory error of each page and the number of
// pages that should be scheduled: without ContinueOnError, pages after the
// first failing one are not.
func (g *Generator) prepareDirs(pages []Page) ([]error, int) {
	errs := make([]error, len(pages))
	done := map[string]error{}

	for i, page := range pages {
		file, err := paths.Within(g.Root, page.Path)
		if err != nil {
			// WritePage reports the invalid path.
			if !g.ContinueOnError {
				return errs, i + 1
			}

			continue
		}

		dir := filepath.Dir(file)

		dirErr, ok := done[dir]
		if !ok {
			dirErr = g.ensureDir(dir)
			done[dir] = dirErr
		}

		errs[i] = dirErr

		if dirErr != nil && !g.ContinueOnError {
			return errs, i + 1
		}
	}

	return errs, len(pages)
}

// compress gzips content with a zeroed header, so output only depends on
// content.
func compress(content []byte) ([]byte, error) {
	buf := &bytes.Buffer{}

	zw, err := gzip.NewWriterLevel(buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("create gzip writer: %w", err)
	}

	if _, err := zw.Write(content); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close gzip writer: %w", err)
	}

	return buf.Bytes(), nil
}
