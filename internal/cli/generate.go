package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/MacroPower/bookredirect/pkg/log"
	"github.com/MacroPower/bookredirect/pkg/manifest"
	"github.com/MacroPower/bookredirect/pkg/paths"
	"github.com/MacroPower/bookredirect/pkg/redirect"
	"github.com/MacroPower/bookredirect/pkg/redirecttui"
	"github.com/MacroPower/bookredirect/pkg/tracing"
)

const (
	generateDesc = `Write an HTML redirect page for every document path.

Each page is written to <output>/<path> and redirects to <base_url><path>.
Existing files are overwritten, so the command is safe to run repeatedly.
`
	generateExample = `  # Write the built-in pages to BookHTML/ at the repository root
  bookredirect generate

  # Use a manifest and write to an explicit directory
  bookredirect generate --manifest redirects.yaml --output /srv/www/book

  # Show what would be written
  bookredirect generate --dry_run
`
)

var (
	ErrArgument        = errors.New("argument error")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrGenerateFailed  = errors.New("generate failed")
)

// NewGenerateCmd returns the generate command.
func NewGenerateCmd(arg *RootArgs) *cobra.Command {
	args := NewGenerateArgs(arg)

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate redirect pages",
		Long:    generateDesc,
		Example: generateExample,
		Args:    cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			m, err := loadManifest(cc, args)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrArgument, err)
			}

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("%w: get working directory: %w", ErrGenerateFailed, err)
			}

			root, err := paths.ResolveOutputRoot(wd, m.Output)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrGenerateFailed, err)
			}

			gen := redirect.NewGenerator(root, m.BaseURL, m.Paths,
				redirect.WithParallelism(args.GetParallelism()),
				redirect.WithContinueOnError(args.GetContinueOnError()),
				redirect.WithParents(args.GetParents()),
				redirect.WithPrecompress(args.GetPrecompress()),
				redirect.WithTracer(tracing.LoggingTracer{}),
			)

			out := cc.OutOrStdout()

			if args.GetDryRun() {
				for _, page := range gen.Plan() {
					fmt.Fprintf(out, "%s -> %s\n", page.Path, page.Target)
				}

				return nil
			}

			ctx, cancel := context.WithTimeout(cc.Context(), args.GetTimeout())
			defer cancel()

			g, err := newGenerator(cc, args, gen)
			if err != nil {
				return err
			}

			res, err := g.Generate(ctx)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrGenerateFailed, err)
			}

			if !args.GetQuiet() {
				fmt.Fprintf(out, "Wrote %d pages to %s\n", len(res.Written), root)
			}

			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", manifest.DefaultOutput,
		"Output directory; relative paths are resolved against the repository root")
	cmd.Flags().StringP("base_url", "u", manifest.DefaultBaseURL, "Prefix of every redirect target")
	cmd.Flags().StringVarP(args.manifest, "manifest", "m", "", "YAML manifest listing the pages to generate")
	cmd.Flags().IntVarP(args.parallelism, "parallelism", "j", 1, "Maximum number of pages written concurrently")
	cmd.Flags().BoolVar(args.continueOnError, "continue_on_error", false, "Attempt every page and report all failures")
	cmd.Flags().BoolVar(args.parents, "parents", true, "Create all missing parent directories")
	cmd.Flags().BoolVar(args.precompress, "precompress", false, "Also write a gzip copy of every page")
	cmd.Flags().BoolVar(args.dryRun, "dry_run", false, "Print the pages that would be written")
	cmd.Flags().BoolVarP(args.quiet, "quiet", "q", false, "Run in quiet mode")
	cmd.Flags().DurationVar(args.timeout, "timeout", time.Minute, "Timeout for the command")

	must(cmd.MarkFlagDirname("output"))
	must(cmd.MarkFlagFilename("manifest", "yaml", "yml"))

	return cmd
}

// loadManifest returns the manifest with explicitly set flags applied. Flags
// not defined on cc are treated as unset.
func loadManifest(cc *cobra.Command, args *GenerateArgs) (*manifest.Manifest, error) {
	m := manifest.Default()

	if args.GetManifest() != "" {
		var err error

		m, err = manifest.Load(args.GetManifest())
		if err != nil {
			return nil, fmt.Errorf("load manifest: %w", err)
		}
	}

	var merr error

	flags := cc.Flags()
	if flags.Changed("output") {
		output, err := flags.GetString("output")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		m.Output = output
	}

	if flags.Changed("base_url") {
		baseURL, err := flags.GetString("base_url")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		m.BaseURL = baseURL
	}

	if merr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return m, nil
}

type generator interface {
	Generate(ctx context.Context) (*redirect.Result, error)
}

//nolint:ireturn // Multiple concrete types.
func newGenerator(cc *cobra.Command, args *GenerateArgs, gen *redirect.Generator) (generator, error) {
	if args.GetQuiet() || !isatty.IsTerminal(os.Stdout.Fd()) {
		return gen, nil
	}

	lvl, err := log.GetLevel(args.GetLogLevel())
	if err != nil {
		// Should not be possible due to root's PersistentPreRunE.
		return nil, fmt.Errorf("%w: %w", ErrArgument, err)
	}

	slog.Debug("starting tui")

	return redirecttui.NewGeneratorTUI(cc.OutOrStdout(), lvl, gen), nil
}

type GenerateArgs struct {
	manifest        *string
	timeout         *time.Duration
	parallelism     *int
	continueOnError *bool
	parents         *bool
	precompress     *bool
	dryRun          *bool
	quiet           *bool
	*RootArgs
}

func NewGenerateArgs(args *RootArgs) *GenerateArgs {
	return &GenerateArgs{
		manifest:        new(string),
		timeout:         new(time.Duration),
		parallelism:     new(int),
		continueOnError: new(bool),
		parents:         new(bool),
		precompress:     new(bool),
		dryRun:          new(bool),
		quiet:           new(bool),
		RootArgs:        args,
	}
}

func (a *GenerateArgs) GetManifest() string {
	return *a.manifest
}

func (a *GenerateArgs) GetTimeout() time.Duration {
	return *a.timeout
}

func (a *GenerateArgs) GetParallelism() int {
	return *a.parallelism
}

func (a *GenerateArgs) GetContinueOnError() bool {
	return *a.continueOnError
}

func (a *GenerateArgs) GetParents() bool {
	return *a.parents
}

func (a *GenerateArgs) GetPrecompress() bool {
	return *a.precompress
}

func (a *GenerateArgs) GetDryRun() bool {
	return *a.dryRun
}

func (a *GenerateArgs) GetQuiet() bool {
	return *a.quiet
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
