// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"errors"
	"fmt"
	"time"

	"github.com/adriancmiranda/envspec/pkg/envspecfile"
)

const (
	// OutcomeSuccess means the step was applied.
	OutcomeSuccess Outcome = "success"
	// OutcomeSkipped means the step was not applied (dry run or not selected).
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the step was attempted and failed.
	OutcomeFailed Outcome = "failed"
)

// ErrInvalidOutcome is the sentinel error wrapped by InvalidOutcomeError.
var ErrInvalidOutcome = errors.New("invalid outcome")

type (
	// Outcome is the result class of one step.
	Outcome string

	// InvalidOutcomeError is returned when an Outcome value is not recognized.
	InvalidOutcomeError struct {
		Value Outcome
	}

	// StepResult records what happened to one step.
	StepResult struct {
		Index    int
		Name     string
		Kind     envspecfile.StepKind
		Summary  string
		Optional bool
		Outcome  Outcome
		// Err is the failure reason; nil unless Outcome is OutcomeFailed.
		Err      error
		Duration time.Duration
	}

	// Report aggregates the results of a run.
	Report struct {
		SpecName string
		DryRun   bool
		// Results holds one entry per step reached, in declaration order.
		Results []StepResult
		// State is the run state after the last step.
		State State
		// Halted is set when a failing step stopped the run.
		Halted bool
		// Interrupted holds the context error when the run was cancelled.
		Interrupted error
	}
)

// Error implements the error interface.
func (e *InvalidOutcomeError) Error() string {
	return fmt.Sprintf("invalid outcome %q (valid: success, skipped, failed)", e.Value)
}

// Unwrap returns ErrInvalidOutcome for errors.Is() compatibility.
func (e *InvalidOutcomeError) Unwrap() error { return ErrInvalidOutcome }

// String returns the string representation of the Outcome.
func (o Outcome) String() string { return string(o) }

// Validate returns nil if the Outcome is one of the defined outcomes.
func (o Outcome) Validate() error {
	switch o {
	case OutcomeSuccess, OutcomeSkipped, OutcomeFailed:
		return nil
	default:
		return &InvalidOutcomeError{Value: o}
	}
}

// Label returns the step name, or the action summary for unnamed steps.
func (r StepResult) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Summary
}

// Count returns the number of results with outcome o.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Failures returns the failed results in order.
func (r *Report) Failures() []StepResult {
	var out []StepResult
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			out = append(out, res)
		}
	}
	return out
}

// Err returns nil when the run succeeded. Failed optional steps do not count.
// Otherwise it joins the required step failures and the context error of an
// interrupted run.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed && !res.Optional {
			errs = append(errs, &StepFailure{Index: res.Index, Name: res.Name, Kind: res.Kind, Err: res.Err})
		}
	}
	if r.Interrupted != nil {
		errs = append(errs, r.Interrupted)
	}
	return errors.Join(errs...)
}

// Success reports whether Err is nil.
func (r *Report) Success() bool {
	return r.Err() == nil
}
