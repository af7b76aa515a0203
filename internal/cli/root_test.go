package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/bookredirect/internal/cli"
)

func TestRootCmdArgs(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		wantErr   error
		logLevel  string
		logFormat string
	}{
		"default config": {
			logLevel:  "warn",
			logFormat: "text",
		},
		"json format": {
			logLevel:  "info",
			logFormat: "json",
		},
		"logfmt format": {
			logLevel:  "debug",
			logFormat: "logfmt",
		},
		"invalid log level": {
			logLevel:  "invalid",
			logFormat: "text",
			wantErr:   cli.ErrLogHandlerFailed,
		},
		"invalid log format": {
			logLevel:  "warn",
			logFormat: "invalid",
			wantErr:   cli.ErrLogHandlerFailed,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rootCmd := cli.NewRootCmd("test_logger", "", "")
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			rootCmd.SetArgs([]string{
				"--log_level", tc.logLevel,
				"--log_format", tc.logFormat,
				"version",
			})
			rootCmd.SetOut(stdout)
			rootCmd.SetErr(stderr)

			err := rootCmd.Execute()

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Regexp(t, `\d+\.\d+\.\d+`, stdout.String())
			}
		})
	}
}

func TestRootCmdArgPointers(t *testing.T) {
	t.Parallel()

	args := cli.NewRootArgs()

	assert.Empty(t, args.GetLogLevel())
	assert.Empty(t, args.GetLogFormat())
}
