package cli

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest_FlagErrors(t *testing.T) {
	t.Parallel()

	cc := &cobra.Command{Use: "generate"}
	cc.Flags().Int("output", 0, "")
	cc.Flags().Int("base_url", 0, "")
	require.NoError(t, cc.Flags().Parse([]string{"--output", "1", "--base_url", "2"}))

	_, err := loadManifest(cc, NewGenerateArgs(NewRootArgs()))
	require.ErrorIs(t, err, ErrInvalidArgument)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
}

func TestLoadManifest_UndefinedFlags(t *testing.T) {
	t.Parallel()

	m, err := loadManifest(&cobra.Command{Use: "root"}, NewGenerateArgs(NewRootArgs()))
	require.NoError(t, err)
	assert.Equal(t, "/php5/", m.BaseURL)
	assert.Equal(t, "BookHTML", m.Output)
	assert.Len(t, m.Paths, 23)
}
