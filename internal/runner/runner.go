// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/adriancmiranda/envspec/pkg/envspecfile"

	"github.com/charmbracelet/log"
)

type (
	// Observer is notified as steps start and finish.
	Observer interface {
		StepStarted(index int, step envspecfile.Step)
		StepFinished(result StepResult)
	}

	// Options configures a run.
	Options struct {
		// DryRun reports every step as Skipped without applying it.
		DryRun bool
		// ContinueOnError keeps going after a required step fails.
		ContinueOnError bool
		// Only restricts the run to these step indices when non-nil.
		// Steps outside the set are reported as Skipped.
		Only []int
		// State is the initial run state. An empty WorkDir means the
		// process working directory.
		State State
		// Registry resolves executors; nil means NewDefaultRegistry with
		// default options.
		Registry *Registry
		// Observer may be nil.
		Observer Observer
		// Logger may be nil.
		Logger *log.Logger
		// Now is used for step timing; defaults to time.Now.
		Now func() time.Time
	}

	nopObserver struct{}
)

func (nopObserver) StepStarted(int, envspecfile.Step) {}
func (nopObserver) StepFinished(StepResult)            {}

// Run applies spec and returns the report. It never returns nil.
// Step failures are recorded in the report; use Report.Err to turn them
// into an error.
func Run(ctx context.Context, spec *envspecfile.Spec, opts Options) *Report {
	opts = opts.withDefaults()
	logger := opts.Logger

	state := opts.State.Clone()
	if state.WorkDir == "" {
		if wd, err := os.Getwd(); err == nil {
			state.WorkDir = wd
		}
	}

	report := &Report{SpecName: spec.Title(), DryRun: opts.DryRun}
	selected := selection(opts.Only)

	for i, step := range spec.Steps() {
		if err := ctx.Err(); err != nil {
			logger.Warn("run interrupted", "before_step", i+1, "err", err)
			report.Interrupted = err
			break
		}

		opts.Observer.StepStarted(i, step)
		result := StepResult{
			Index:    i,
			Name:     step.Name,
			Kind:     step.Kind(),
			Summary:  step.Label(),
			Optional: step.Optional,
		}

		switch {
		case opts.DryRun:
			logger.Info("would apply", "step", i+1, "kind", result.Kind, "action", describe(step))
			result.Outcome = OutcomeSkipped
		case selected != nil && !selected[i]:
			logger.Debug("not selected", "step", i+1)
			result.Outcome = OutcomeSkipped
		default:
			start := opts.Now()
			next, err := apply(ctx, opts.Registry, step, state)
			result.Duration = opts.Now().Sub(start)
			if err != nil {
				result.Outcome = OutcomeFailed
				result.Err = err
				logger.Debug("step failed", "step", i+1, "kind", result.Kind, "err", err)
			} else {
				result.Outcome = OutcomeSuccess
				state = next
				logger.Debug("step applied", "step", i+1, "kind", result.Kind, "took", result.Duration)
			}
		}

		report.Results = append(report.Results, result)
		opts.Observer.StepFinished(result)

		if result.Outcome != OutcomeFailed {
			continue
		}
		if err := ctx.Err(); err != nil {
			report.Interrupted = err
			report.Halted = true
			break
		}
		if !step.Optional && !opts.ContinueOnError {
			report.Halted = true
			break
		}
	}

	report.State = state
	return report
}

func apply(ctx context.Context, registry *Registry, step envspecfile.Step, state State) (State, error) {
	executor, err := registry.Get(step.Kind())
	if err != nil {
		return state, err
	}
	// each executor works on its own copy of the state
	return executor.Execute(ctx, step.Action, state.Clone())
}

func describe(step envspecfile.Step) string {
	if step.Action == nil {
		return ""
	}
	return step.Action.Describe()
}

func selection(only []int) map[int]bool {
	if only == nil {
		return nil
	}
	set := make(map[int]bool, len(only))
	for _, i := range only {
		set[i] = true
	}
	return set
}

func (o Options) withDefaults() Options {
	if o.Registry == nil {
		o.Registry = NewDefaultRegistry(ExecutorOptions{})
	}
	if o.Observer == nil {
		o.Observer = nopObserver{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
