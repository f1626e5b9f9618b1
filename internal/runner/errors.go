// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"errors"
	"fmt"

	"github.com/adriancmiranda/envspec/pkg/envspecfile"
)

var (
	// ErrStepFailed is matched by every StepFailure.
	ErrStepFailed = errors.New("step failed")
	// ErrNoExecutor is returned when no executor is registered for a step kind.
	ErrNoExecutor = errors.New("no executor registered")
)

// StepFailure describes a step whose action failed.
// errors.Is(err, ErrStepFailed) matches it and Unwrap exposes the cause.
type StepFailure struct {
	Index int
	Name  string
	Kind  envspecfile.StepKind
	Err   error
}

// Error implements the error interface.
func (e *StepFailure) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("step %d (%s, %s) failed: %v", e.Index+1, e.Name, e.Kind, e.Err)
	}
	return fmt.Sprintf("step %d (%s) failed: %v", e.Index+1, e.Kind, e.Err)
}

// Is reports whether target is ErrStepFailed.
func (e *StepFailure) Is(target error) bool { return target == ErrStepFailed }

// Unwrap returns the underlying cause.
func (e *StepFailure) Unwrap() error { return e.Err }
