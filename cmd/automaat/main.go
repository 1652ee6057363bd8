// Command automaat loads automata and regular expressions from YAML and
// checks, runs, prints, draws, or enumerates them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amp-labs/automaat/cli"
	"github.com/amp-labs/automaat/logger"
	"github.com/amp-labs/automaat/visualizer"
)

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	log, err := logger.ConfigureLogging("automaat")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2) //nolint:mnd
	}

	ctx := logger.WithLogger(context.Background(), log)

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}

			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the real terminal and Graphviz into the application.
func run(ctx context.Context, out io.Writer, args []string) error {
	a := &app{
		out:      out,
		prompter: cli.NewPrompter(),
		renderer: visualizer.DefaultRenderer(),
	}

	return a.run(ctx, args)
}
