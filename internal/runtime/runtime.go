// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/adriancmiranda/envspec/pkg/types"
)

// Shell names.
const (
	ShellNative  = "native"
	ShellVirtual = "virtual"
)

// ErrUnknownShell is returned by New for an unrecognized shell name.
var ErrUnknownShell = errors.New("unknown shell")

type (
	// Request describes one script execution.
	Request struct {
		// Script is the shell source to run.
		Script string
		// Dir is the working directory. Empty means the process working directory.
		Dir string
		// Env is laid over the host environment.
		Env map[string]string
		// Stdin, Stdout and Stderr default to empty input and discarded output.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// Result contains the outcome of a script execution.
	Result struct {
		// ExitCode is the exit code of the script.
		ExitCode types.ExitCode
		// Error is set when the script could not be started or interpreted.
		Error error
	}

	// Shell runs scripts.
	Shell interface {
		// Name returns the shell name ("native" or "virtual").
		Name() string
		// Available reports whether the shell can run on this host.
		Available() bool
		// Run executes req and blocks until it finishes or ctx is cancelled.
		Run(ctx context.Context, req Request) *Result
	}

	// ExitError reports a script that ran but exited non-zero.
	ExitError struct {
		Code types.ExitCode
	}
)

// New returns the shell registered under name. The empty name selects the
// native shell.
func New(name string) (Shell, error) {
	switch name {
	case "", ShellNative:
		return NewNativeShell(), nil
	case ShellVirtual:
		return NewVirtualShell(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShell, name)
	}
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Err folds a Result into a single error: the execution error if any,
// otherwise an *ExitError for a non-zero exit code, otherwise nil.
func (r *Result) Err() error {
	if r.Error != nil {
		return r.Error
	}
	if !r.ExitCode.IsSuccess() {
		return &ExitError{Code: r.ExitCode}
	}
	return nil
}

func (req Request) streams() (io.Reader, io.Writer, io.Writer) {
	stdout := req.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := req.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	return req.Stdin, stdout, stderr
}
