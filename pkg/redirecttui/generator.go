package redirecttui

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MacroPower/bookredirect/pkg/log"
	"github.com/MacroPower/bookredirect/pkg/redirect"
)

// Generator is implemented by [redirect.Generator].
type Generator interface {
	Generate(ctx context.Context) (*redirect.Result, error)
	Subscribe(f func(any))
}

type GeneratorTUI struct {
	gen  Generator
	p    *tea.Program
	w    io.Writer
	opts []tea.ProgramOption
}

// NewGeneratorTUI wraps gen. While a run is in progress the default
// [slog.Logger] writes into the program instead of to the terminal directly.
func NewGeneratorTUI(w io.Writer, lvl slog.Level, gen Generator, opts ...tea.ProgramOption) *GeneratorTUI {
	c := &GeneratorTUI{
		gen:  gen,
		w:    w,
		opts: opts,
	}

	c.gen.Subscribe(c.broadcastEvent)

	slog.SetDefault(
		slog.New(log.CreateHandler(c, lvl, log.FormatText)),
	)

	return c
}

func (c *GeneratorTUI) broadcastEvent(evt any) {
	if c.p != nil {
		c.p.Send(evt)
	}
}

func (c *GeneratorTUI) Write(p []byte) (int, error) {
	c.broadcastEvent(teaMsgWriteLog(string(p)))

	return len(p), nil
}

func (c *GeneratorTUI) Subscribe(f func(any)) {
	c.gen.Subscribe(f)
}

// Generate runs the wrapped generator while displaying progress. Quitting
// the program cancels the run.
func (c *GeneratorTUI) Generate(ctx context.Context) (*redirect.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := append([]tea.ProgramOption{tea.WithOutput(c.w)}, c.opts...)
	c.p = tea.NewProgram(NewGenerateModel(), opts...)

	type outcome struct {
		res *redirect.Result
		err error
	}

	done := make(chan outcome, 1)

	go func() {
		res, err := c.gen.Generate(ctx)
		done <- outcome{res: res, err: err}
	}()

	if _, err := c.p.Run(); err != nil {
		cancel()
		<-done

		return nil, fmt.Errorf("failed to launch tui: %w", err)
	}

	cancel()
	out := <-done

	return out.res, out.err
}
