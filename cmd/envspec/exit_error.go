// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/adriancmiranda/envspec/pkg/envspecfile"
	"github.com/adriancmiranda/envspec/pkg/types"
)

// ErrUsage is the sentinel error wrapped by UsageError.
var ErrUsage = errors.New("usage error")

type (
	// ExitError signals a non-zero exit code without forcing os.Exit in RunE
	// handlers. A nil Err means the failure was already reported.
	ExitError struct {
		Code types.ExitCode
		Err  error
	}

	// UsageError reports missing or invalid command-line arguments. Usage
	// holds the rendered banner printed before Reason.
	UsageError struct {
		Usage  string
		Reason string
		Err    error
	}
)

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Error implements the error interface.
func (e *UsageError) Error() string { return e.Reason }

// Unwrap returns ErrUsage and the cause, if any.
func (e *UsageError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUsage}
	}
	return []error{ErrUsage, e.Err}
}

// exitCodeFor maps an error returned by command execution to a process
// exit status.
func exitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.Is(err, context.Canceled):
		return types.ExitInterrupted
	case errors.Is(err, envspecfile.ErrParse):
		return types.ExitParseError
	default:
		return types.ExitFailure
	}
}
