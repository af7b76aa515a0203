package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/bookredirect/pkg/manifest"
	"github.com/MacroPower/bookredirect/pkg/redirecterrors"
)

// NewSchemaCmd returns the schema command.
func NewSchemaCmd() *cobra.Command {
	format := new(string)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the manifest file",
		RunE: func(cc *cobra.Command, _ []string) error {
			var (
				b   []byte
				err error
			)

			switch *format {
			case "json":
				b, err = manifest.SchemaJSON()
			case "yaml":
				b, err = manifest.SchemaYAML()
			default:
				return fmt.Errorf("%w: %w: format %q", ErrInvalidArgument, redirecterrors.ErrInvalidFormat, *format)
			}

			if err != nil {
				return fmt.Errorf("generate schema: %w", err)
			}

			_, err = fmt.Fprintln(cc.OutOrStdout(), string(b))
			if err != nil {
				return fmt.Errorf("failed to write to output: %w", err)
			}

			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(format, "format", "f", "json", "Output format (json, yaml)")

	return cmd
}
