package redirect

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/MacroPower/bookredirect/pkg/syncs"
	"github.com/MacroPower/bookredirect/pkg/tracing"
)

// Generator writes one redirect page per entry of Paths below Root.
type Generator struct {
	Tracer          tracing.Tracer
	locks           *syncs.PathLock
	Root            string
	BaseURL         string
	Paths           []string
	subs            []func(any)
	Parallelism     int
	mu              sync.RWMutex
	ContinueOnError bool
	Parents         bool
	Precompress     bool
}

// NewGenerator creates a [Generator] writing below the absolute directory
// root. By default pages are written one at a time in list order, missing
// parent directories are created, and the first failure stops the run.
func NewGenerator(root, baseURL string, paths []string, opts ...GeneratorOpts) *Generator {
	g := &Generator{
		Tracer:      tracing.NopTracer{},
		locks:       syncs.NewPathLock(),
		Root:        root,
		BaseURL:     baseURL,
		Paths:       paths,
		subs:        []func(any){},
		Parallelism: 1,
		Parents:     true,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

type GeneratorOpts func(*Generator)

// WithParallelism sets the maximum number of pages written concurrently.
// Values below one are treated as one.
func WithParallelism(n int) GeneratorOpts {
	return func(g *Generator) {
		g.Parallelism = max(1, n)
	}
}

// WithContinueOnError makes the run attempt every page and report all
// failures together, instead of stopping at the first failure.
func WithContinueOnError(continueOnError bool) GeneratorOpts {
	return func(g *Generator) {
		g.ContinueOnError = continueOnError
	}
}

// WithParents controls whether all missing parent directories are created.
// When false, only the immediate parent of a page is created, and a page
// whose parent's parent is missing fails.
func WithParents(parents bool) GeneratorOpts {
	return func(g *Generator) {
		g.Parents = parents
	}
}

// WithPrecompress additionally writes a gzip copy of every page next to it.
func WithPrecompress(precompress bool) GeneratorOpts {
	return func(g *Generator) {
		g.Precompress = precompress
	}
}

func WithTracer(t tracing.Tracer) GeneratorOpts {
	return func(g *Generator) {
		g.Tracer = t
	}
}

func (g *Generator) broadcastEvent(evt any) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, sub := range g.subs {
		sub(evt)
	}
}

// Subscribe registers f to receive generation events.
func (g *Generator) Subscribe(f func(any)) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.subs = append(g.subs, f)
}

// Plan returns the pages a run would write, in order, without touching the
// filesystem.
func (g *Generator) Plan() []Page {
	pages := make([]Page, 0, len(g.Paths))
	for _, p := range g.Paths {
		pages = append(pages, NewPage(g.BaseURL, p))
	}

	return pages
}

// Generate writes every planned page. The returned [Result] is always
// non-nil and lists what was written before any failure.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	logger := slog.With(
		slog.String("cmd", "generate"),
		slog.String("root", g.Root),
		slog.String("base_url", g.BaseURL),
	)

	pages := g.Plan()
	failed := make([]*PageError, len(pages))
	attempted := make([]bool, len(pages))

	g.broadcastEvent(EventSetPageTotal(len(pages)))

	logger.Info("generating redirects",
		slog.Int("pages", len(pages)),
		slog.Int("parallelism", g.Parallelism),
	)

	// Single-level directory creation depends on list order, so directories
	// are created before any page is written.
	var dirErrs []error

	last := len(pages)
	if !g.Parents && ctx.Err() == nil {
		dirErrs, last = g.prepareDirs(pages)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, g.Parallelism))

	for i, page := range pages[:last] {
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err //nolint:wrapcheck // Cancellation is reported as-is.
			}

			attempted[i] = true

			g.broadcastEvent(EventWritingPage(page.Path))

			var err error
			if dirErrs != nil && dirErrs[i] != nil {
				err = dirErrs[i]
			} else {
				err = g.WritePage(egCtx, page)
			}

			g.broadcastEvent(EventWrotePage{Path: page.Path, Err: err})

			if err != nil {
				pe := &PageError{Path: page.Path, Err: err}
				failed[i] = pe

				logger.Error("failed to write page", slog.String("path", page.Path), slog.Any("err", err))

				if g.ContinueOnError {
					return nil
				}

				return pe
			}

			return nil
		})
	}

	runErr := eg.Wait()

	res := &Result{}
	for i, page := range pages {
		if !attempted[i] {
			continue
		}

		if failed[i] != nil {
			res.Failed = append(res.Failed, failed[i])

			continue
		}

		res.Written = append(res.Written, page.Path)
	}

	if runErr == nil && len(res.Failed) > 0 {
		var merr *multierror.Error
		for _, pe := range res.Failed {
			merr = multierror.Append(merr, pe)
		}

		runErr = merr
	}

	if runErr == nil {
		runErr = ctx.Err()
	}

	g.broadcastEvent(EventDone{Err: runErr})

	if runErr != nil {
		logger.Warn("generation incomplete",
			slog.Int("written", len(res.Written)),
			slog.Int("failed", len(res.Failed)),
		)

		return res, runErr
	}

	logger.Info("generation complete", slog.Int("written", len(res.Written)))

	return res, nil
}
