package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/client/client"
	"github.com/dmitrijs2005/accountkeeper/internal/client/config"
	"github.com/dmitrijs2005/accountkeeper/internal/flagx"
)

type App struct {
	config   *config.Config
	client   client.Client
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	apiClient := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

// Run executes the command named on the command line, or starts the REPL
// when there is none. It returns the process exit code.
func (a *App) Run(ctx context.Context) int {
	args := flagx.Positional(os.Args[1:], config.ValueFlags)
	if len(args) == 0 {
		a.Root(ctx)
		return 0
	}

	if err := a.dispatch(ctx, args[0]); err != nil {
		a.report(err)
		return 1
	}
	return 0
}
