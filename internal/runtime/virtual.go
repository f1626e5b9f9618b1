// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adriancmiranda/envspec/pkg/types"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualShell executes scripts with the embedded mvdan/sh interpreter.
// External programs are still spawned through the default exec handler.
type VirtualShell struct{}

// NewVirtualShell creates a new virtual shell
func NewVirtualShell() *VirtualShell {
	return &VirtualShell{}
}

// Name returns the shell name
func (s *VirtualShell) Name() string {
	return ShellVirtual
}

// Available returns true; the interpreter is built in
func (s *VirtualShell) Available() bool {
	return true
}

// Run interprets the script
func (s *VirtualShell) Run(ctx context.Context, req Request) *Result {
	prog, err := syntax.NewParser().Parse(strings.NewReader(req.Script), "script")
	if err != nil {
		return NewErrorResult(types.ExitFailure, fmt.Errorf("failed to parse script: %w", err))
	}

	stdin, stdout, stderr := req.streams()
	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(overlayEnv(req.Env)...)),
		interp.StdIO(stdin, stdout, stderr),
	}
	if req.Dir != "" {
		opts = append(opts, interp.Dir(req.Dir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return NewErrorResult(types.ExitFailure, fmt.Errorf("failed to create interpreter: %w", err))
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) && ctx.Err() == nil {
			return NewExitCodeResult(types.ExitCode(exitStatus))
		}
		if ctx.Err() != nil {
			return NewErrorResult(types.ExitInterrupted, ctx.Err())
		}
		return NewErrorResult(types.ExitFailure, fmt.Errorf("script execution failed: %w", err))
	}

	return NewSuccessResult()
}
