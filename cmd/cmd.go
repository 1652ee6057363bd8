// Package cmd runs external programs with their streams wired to buffers
// or observer callbacks. The visualizer drives Graphviz through it.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/amp-labs/automaat/logger"
)

// Cmd is a single invocation of an external program. Setters return the
// receiver so calls can be chained; Run may be called once.
type Cmd struct {
	ctx      context.Context //nolint:containedctx // Bound to one invocation
	cmd      *exec.Cmd
	finished []func()
}

// New prepares name with args. The process inherits the environment and
// is killed when ctx is done.
func New(ctx context.Context, name string, args ...string) *Cmd {
	c := exec.CommandContext(ctx, name, args...)
	c.Env = os.Environ()

	return &Cmd{
		ctx: ctx,
		cmd: c,
	}
}

func (c *Cmd) SetDir(dir string) *Cmd {
	c.cmd.Dir = dir

	return c
}

func (c *Cmd) SetStdin(in io.Reader) *Cmd {
	c.cmd.Stdin = in

	return c
}

// SetStdinBytes feeds input to the process on stdin.
func (c *Cmd) SetStdinBytes(input []byte) *Cmd {
	return c.SetStdin(bytes.NewReader(input))
}

func (c *Cmd) SetStdout(out io.Writer) *Cmd {
	c.cmd.Stdout = out

	return c
}

func (c *Cmd) SetStderr(out io.Writer) *Cmd {
	c.cmd.Stderr = out

	return c
}

// SetStdoutObserver buffers stdout and hands it to f once the process exits.
func (c *Cmd) SetStdoutObserver(f func([]byte)) *Cmd {
	c.cmd.Stdout = c.observe(f)

	return c
}

// SetStderrObserver buffers stderr and hands it to f once the process exits.
func (c *Cmd) SetStderrObserver(f func([]byte)) *Cmd {
	c.cmd.Stderr = c.observe(f)

	return c
}

// AppendEnv adds key=value to the inherited environment.
func (c *Cmd) AppendEnv(key, value string) *Cmd {
	c.cmd.Env = append(c.cmd.Env, key+"="+value)

	return c
}

func (c *Cmd) observe(f func([]byte)) io.Writer {
	var buf bytes.Buffer

	c.finished = append(c.finished, func() {
		f(buf.Bytes())
	})

	return &buf
}

// Run starts the process and waits for it. A non-zero exit is reported
// through the status code with a nil error; the error is reserved for
// processes that could not be started or were killed.
func (c *Cmd) Run() (int, error) {
	log := logger.Get(c.ctx)
	log.Debug("run cmd", "cmd", strings.Join(c.cmd.Args, " "), "dir", c.cmd.Dir)

	st, err := status(c.cmd.Run())

	for _, f := range c.finished {
		f()
	}

	if err != nil {
		log.Debug("cmd failed", "cmd", c.cmd.Path, "error", err)
	}

	return st, err
}

func status(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code >= 0 {
			return code, nil
		}

		// -1 means the process was terminated by a signal, e.g. on cancellation.
		return 1, fmt.Errorf("command terminated: %w", err)
	}

	return 1, err
}
