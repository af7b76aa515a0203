package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/bookredirect/pkg/paths"
	"github.com/MacroPower/bookredirect/pkg/redirecterrors"
)

func TestResolveOutputRoot(t *testing.T) {
	t.Parallel()

	t.Run("absolute output", func(t *testing.T) {
		t.Parallel()

		abs := filepath.Join(t.TempDir(), "out", "..", "BookHTML")

		got, err := paths.ResolveOutputRoot(t.TempDir(), abs)
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean(abs), got)
	})

	t.Run("relative to repository root", func(t *testing.T) {
		t.Parallel()

		repo := t.TempDir()
		initRepo(t, repo)

		wd := filepath.Join(repo, "scripts")
		require.NoError(t, os.MkdirAll(wd, 0o755))

		got, err := paths.ResolveOutputRoot(wd, "BookHTML")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(repo, "BookHTML"), got)
	})

	t.Run("relative to working directory", func(t *testing.T) {
		t.Parallel()

		wd := t.TempDir()

		got, err := paths.ResolveOutputRoot(wd, "BookHTML")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(wd, "BookHTML"), got)
	})
}

func TestWithin(t *testing.T) {
	t.Parallel()

	root := filepath.Join(string(filepath.Separator), "srv", "BookHTML")

	tcs := map[string]struct {
		err  error
		rel  string
		want string
	}{
		"top level": {
			rel:  "introduction.html",
			want: filepath.Join(root, "introduction.html"),
		},
		"one directory": {
			rel:  "hashtables/array_api.html",
			want: filepath.Join(root, "hashtables", "array_api.html"),
		},
		"dot segments staying inside": {
			rel:  "zvals/../zvals.html",
			want: filepath.Join(root, "zvals.html"),
		},
		"parent escape": {
			rel: "../etc/passwd",
			err: redirecterrors.ErrResolvedOutsideRoot,
		},
		"root itself": {
			rel: "..",
			err: redirecterrors.ErrResolvedOutsideRoot,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := paths.Within(root, tc.rel)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
