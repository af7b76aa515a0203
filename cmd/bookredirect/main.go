package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MacroPower/bookredirect/internal/cli"
)

const (
	cmdName = "bookredirect"

	shortDesc = "Generate redirect pages for moved book chapters."
	longDesc  = `Generate static HTML redirect pages for moved book chapters.

The PHP internals book moved its chapters below /php5/. bookredirect writes a
small HTML page at every old location that sends the browser to the new one,
so previously published links keep working.
`
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	err := cmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
