// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/adriancmiranda/envspec/internal/pkgmgr"
	"github.com/adriancmiranda/envspec/internal/runtime"
	"github.com/adriancmiranda/envspec/pkg/envspecfile"
)

type (
	// Executor applies one kind of step.
	Executor interface {
		// Kind returns the step kind this executor handles.
		Kind() envspecfile.StepKind
		// Execute applies action to state and returns the next state.
		// On error the returned state is ignored.
		Execute(ctx context.Context, action envspecfile.Action, state State) (State, error)
	}

	// Registry maps step kinds to executors.
	Registry struct {
		executors map[envspecfile.StepKind]Executor
	}

	// ExecutorOptions configures the built-in executors.
	ExecutorOptions struct {
		// Stdin, Stdout and Stderr are wired to spawned commands.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		// DefaultShell is used by shell steps that do not name one.
		DefaultShell string
		// PackageManager forces a manager for package steps that do not name one.
		PackageManager string
		// LookPath resolves executables; defaults to exec.LookPath.
		LookPath pkgmgr.LookPathFunc
		// NewShell resolves a shell by name; defaults to runtime.New.
		NewShell func(name string) (runtime.Shell, error)
	}
)

// NewRegistry creates a registry holding the given executors.
func NewRegistry(executors ...Executor) *Registry {
	r := &Registry{executors: make(map[envspecfile.StepKind]Executor)}
	for _, e := range executors {
		r.Register(e)
	}
	return r
}

// NewDefaultRegistry creates a registry with an executor for every step kind.
func NewDefaultRegistry(opts ExecutorOptions) *Registry {
	opts = opts.withDefaults()
	return NewRegistry(
		&packageExecutor{opts: opts},
		&fileExecutor{},
		&envExecutor{},
		&shellExecutor{opts: opts},
		&dotenvExecutor{},
	)
}

// Register adds e, replacing any executor for the same kind.
func (r *Registry) Register(e Executor) {
	r.executors[e.Kind()] = e
}

// Get returns the executor for kind.
func (r *Registry) Get(kind envspecfile.StepKind) (Executor, error) {
	e, ok := r.executors[kind]
	if !ok {
		return nil, fmt.Errorf("%w for step kind '%s'", ErrNoExecutor, kind)
	}
	return e, nil
}

func (o ExecutorOptions) withDefaults() ExecutorOptions {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.LookPath == nil {
		o.LookPath = exec.LookPath
	}
	if o.NewShell == nil {
		o.NewShell = runtime.New
	}
	return o
}
