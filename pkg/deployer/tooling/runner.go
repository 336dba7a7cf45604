// Package tooling shells out to the external toolchain: the system package
// manager, npm, and the hardhat runner. Calls are opaque; the only signal
// consumed is the exit code.
package tooling

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ethereum/go-ethereum/log"
)

// Runner executes one external command in the given directory, blocking
// until it exits. A non-zero exit is returned as an error.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
}

type CmdError struct {
	Cmd      string
	ExitCode int
	Err      error
}

func (e *CmdError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Cmd, e.ExitCode)
}

func (e *CmdError) Unwrap() error {
	return e.Err
}

type execRunner struct {
	lgr    log.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewRunner returns a Runner that inherits the process's stdout and stderr,
// so toolchain output stays visible to the operator. No structured output
// is captured; stages that need results read the files the tools write.
func NewRunner(lgr log.Logger) Runner {
	return &execRunner{lgr: lgr, stdout: os.Stdout, stderr: os.Stderr}
}

func (r *execRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	display := strings.Join(append([]string{name}, args...), " ")
	r.lgr.Info("running command", "cmd", display, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &CmdError{Cmd: display, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return fmt.Errorf("failed to run %q: %w", display, err)
	}
	return nil
}
