package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/accountkeeper/internal/client/client"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errQuit           = errors.New("quit")
)

const helpText = "Available commands: signup, login, request-reset, reset, help, exit"

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

// dispatch runs one named command.
func (a *App) dispatch(ctx context.Context, cmd string) error {
	switch cmd {
	case "help":
		fmt.Fprintln(a.out, helpText)
		return nil
	case "signup":
		return a.Signup(ctx)
	case "login":
		return a.Login(ctx)
	case "request-reset":
		return a.RequestReset(ctx)
	case "reset":
		return a.Reset(ctx)
	case "exit", "quit":
		return errQuit
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
}

// report prints err for the user. Server messages are shown verbatim and
// transport problems collapse to a single generic line.
func (a *App) report(err error) {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		fmt.Fprintln(a.out, "Error:", apiErr.Message)
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Error: network error")
	default:
		fmt.Fprintln(a.out, "Error:", err.Error())
	}
}

// Root runs the interactive loop until exit or end of input.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Accounts CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "acli %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)

		if len(parts) > 0 {
			cmdErr := a.dispatch(ctx, parts[0])
			if errors.Is(cmdErr, errQuit) {
				fmt.Fprintln(a.out, "Bye!")
				return
			}
			if cmdErr != nil {
				a.report(cmdErr)
			}
		}

		if err != nil {
			fmt.Fprintln(a.out)
			return
		}
	}
}
