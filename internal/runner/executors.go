// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adriancmiranda/envspec/internal/pkgmgr"
	"github.com/adriancmiranda/envspec/internal/runtime"
	"github.com/adriancmiranda/envspec/pkg/envspecfile"

	"mvdan.cc/sh/v3/shell"
)

type (
	packageExecutor struct{ opts ExecutorOptions }
	fileExecutor    struct{}
	envExecutor     struct{}
	shellExecutor   struct{ opts ExecutorOptions }
	dotenvExecutor  struct{}
)

func (*packageExecutor) Kind() envspecfile.StepKind { return envspecfile.KindPackage }
func (*fileExecutor) Kind() envspecfile.StepKind    { return envspecfile.KindFile }
func (*envExecutor) Kind() envspecfile.StepKind     { return envspecfile.KindEnv }
func (*shellExecutor) Kind() envspecfile.StepKind   { return envspecfile.KindShell }
func (*dotenvExecutor) Kind() envspecfile.StepKind  { return envspecfile.KindDotenv }

// Execute installs the package unless its binary is already on PATH.
func (e *packageExecutor) Execute(ctx context.Context, action envspecfile.Action, state State) (State, error) {
	a, ok := action.(envspecfile.PackageInstall)
	if !ok {
		return state, unexpectedAction(e.Kind(), action)
	}
	if a.Binary != "" {
		if _, err := e.opts.LookPath(a.Binary); err == nil {
			return state, nil
		}
	}

	preferred := a.Manager
	if preferred == "" {
		preferred = e.opts.PackageManager
	}
	mgr, err := pkgmgr.Resolve(preferred, e.opts.LookPath)
	if err != nil {
		return state, err
	}

	sh, err := e.opts.NewShell(runtime.ShellNative)
	if err != nil {
		return state, err
	}
	res := sh.Run(ctx, runtime.Request{
		Script: mgr.InstallScript(a.Package),
		Dir:    state.WorkDir,
		Env:    state.Env,
		Stdin:  e.opts.Stdin,
		Stdout: e.opts.Stdout,
		Stderr: e.opts.Stderr,
	})
	if err := res.Err(); err != nil {
		return state, fmt.Errorf("%s install %s: %w", mgr.Name, a.Package, err)
	}
	return state, nil
}

// Execute writes or appends the file, creating parent directories.
func (e *fileExecutor) Execute(_ context.Context, action envspecfile.Action, state State) (State, error) {
	a, ok := action.(envspecfile.FileWrite)
	if !ok {
		return state, unexpectedAction(e.Kind(), action)
	}
	path, err := state.Resolve(a.Path)
	if err != nil {
		return state, fmt.Errorf("resolve path %q: %w", a.Path, err)
	}
	perm, err := a.Mode.Perm()
	if err != nil {
		return state, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return state, fmt.Errorf("create parent directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if a.Append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, perm)
	if err != nil {
		return state, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteString(a.Content); err != nil {
		_ = f.Close()
		return state, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return state, fmt.Errorf("close %s: %w", path, err)
	}
	return state, nil
}

// Execute expands the value against the run environment and sets it.
func (e *envExecutor) Execute(_ context.Context, action envspecfile.Action, state State) (State, error) {
	a, ok := action.(envspecfile.EnvVarSet)
	if !ok {
		return state, unexpectedAction(e.Kind(), action)
	}
	value, err := shell.Expand(a.Value, state.Getenv)
	if err != nil {
		return state, fmt.Errorf("expand %s: %w", a.Name, err)
	}
	return state.WithEnv(a.Name, value), nil
}

// Execute runs the command through the selected shell.
func (e *shellExecutor) Execute(ctx context.Context, action envspecfile.Action, state State) (State, error) {
	a, ok := action.(envspecfile.ShellCommand)
	if !ok {
		return state, unexpectedAction(e.Kind(), action)
	}
	name := string(a.Shell)
	if name == "" {
		name = e.opts.DefaultShell
	}
	sh, err := e.opts.NewShell(name)
	if err != nil {
		return state, err
	}
	if !sh.Available() {
		return state, fmt.Errorf("%s shell is not available on this host", sh.Name())
	}

	dir := state.WorkDir
	if a.Dir != "" {
		if dir, err = state.Resolve(a.Dir); err != nil {
			return state, fmt.Errorf("resolve dir %q: %w", a.Dir, err)
		}
	}
	res := sh.Run(ctx, runtime.Request{
		Script: a.Command,
		Dir:    dir,
		Env:    state.Env,
		Stdin:  e.opts.Stdin,
		Stdout: e.opts.Stdout,
		Stderr: e.opts.Stderr,
	})
	return state, res.Err()
}

// Execute merges the dotenv file into the run environment.
func (e *dotenvExecutor) Execute(_ context.Context, action envspecfile.Action, state State) (State, error) {
	a, ok := action.(envspecfile.EnvFile)
	if !ok {
		return state, unexpectedAction(e.Kind(), action)
	}
	raw, optional := strings.CutSuffix(a.Path, "?")
	path, err := state.Resolve(raw)
	if err != nil {
		return state, fmt.Errorf("resolve %q: %w", raw, err)
	}
	if optional {
		path += "?"
	}
	next := state.Clone()
	if err := runtime.LoadEnvFile(next.Env, path, state.WorkDir); err != nil {
		return state, err
	}
	return next, nil
}

func unexpectedAction(kind envspecfile.StepKind, action envspecfile.Action) error {
	return fmt.Errorf("%s executor cannot handle %T", kind, action)
}
