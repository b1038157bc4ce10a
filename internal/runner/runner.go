// Package runner executes external package-manager commands. The
// orchestrator depends only on the Runner interface so tests can substitute
// a recorder for real processes.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"mvdan.cc/sh/v3/shell"
	"mvdan.cc/sh/v3/syntax"
)

// ErrEmptyCommand is returned by Parse for a blank command line.
var ErrEmptyCommand = errors.New("empty command")

// Command is a program and its arguments.
type Command struct {
	Name string
	Args []string
}

// New builds a Command from argv.
func New(argv ...string) Command {
	if len(argv) == 0 {
		return Command{}
	}
	return Command{Name: argv[0], Args: argv[1:]}
}

// Parse splits line with POSIX shell word rules, expanding environment
// variables. Pipes, redirections and command substitution are rejected.
func Parse(line string) (Command, error) {
	fields, err := shell.Fields(line, os.Getenv)
	if err != nil {
		return Command{}, fmt.Errorf("parsing command %q: %w", line, err)
	}
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}
	return New(fields...), nil
}

// String renders the command as a shell-quoted line.
func (c Command) String() string {
	words := append([]string{c.Name}, c.Args...)
	quoted := make([]string, len(words))
	for i, w := range words {
		q, err := syntax.Quote(w, syntax.LangBash)
		if err != nil {
			q = w
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}

// Runner runs a command in dir. A nil error means a zero exit status.
type Runner interface {
	Run(ctx context.Context, dir string, cmd Command) error
}

// ExitError reports a command that ran and exited non-zero.
type ExitError struct {
	Command Command
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

// Exec runs commands as child processes with inherited stdio.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Timeout bounds each command; zero waits indefinitely.
	Timeout time.Duration
}

// Run implements Runner.
func (e *Exec) Run(ctx context.Context, dir string, cmd Command) error {
	if cmd.Name == "" {
		return ErrEmptyCommand
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = dir
	c.Stdin = e.Stdin
	c.Stdout = e.Stdout
	c.Stderr = e.Stderr

	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", cmd, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: cmd, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s: %w", cmd, err)
	}
	return nil
}
