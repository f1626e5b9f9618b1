// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	goruntime "runtime"
	"strings"

	"github.com/adriancmiranda/envspec/pkg/types"
)

// NativeShell executes scripts using the system's default shell
type NativeShell struct {
	// Shell overrides the default shell
	Shell string
	// ShellArgs are arguments passed to the shell before the script
	ShellArgs []string

	lookPath func(string) (string, error)
	getenv   func(string) string
	goos     string
}

// NewNativeShell creates a new native shell
func NewNativeShell() *NativeShell {
	return &NativeShell{
		lookPath: exec.LookPath,
		getenv:   os.Getenv,
		goos:     goruntime.GOOS,
	}
}

// Name returns the shell name
func (s *NativeShell) Name() string {
	return ShellNative
}

// Available returns whether a host shell was found
func (s *NativeShell) Available() bool {
	_, err := s.resolveShell()
	return err == nil
}

// Run executes the script with the host shell
func (s *NativeShell) Run(ctx context.Context, req Request) *Result {
	shell, err := s.resolveShell()
	if err != nil {
		return NewErrorResult(types.ExitFailure, err)
	}

	args := append(s.shellArgs(shell), req.Script)
	cmd := exec.CommandContext(ctx, shell, args...)
	cmd.Dir = req.Dir
	cmd.Env = overlayEnv(req.Env)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = req.streams()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return NewExitCodeResult(types.ExitCode(exitErr.ExitCode()))
		}
		if ctx.Err() != nil {
			return NewErrorResult(types.ExitInterrupted, ctx.Err())
		}
		return NewErrorResult(types.ExitFailure, fmt.Errorf("failed to execute command: %w", err))
	}

	return NewSuccessResult()
}

// resolveShell determines which shell to use
func (s *NativeShell) resolveShell() (string, error) {
	if s.Shell != "" {
		return s.Shell, nil
	}

	switch s.goos {
	case "windows":
		for _, candidate := range []string{"pwsh", "powershell", "cmd"} {
			if path, err := s.lookPath(candidate); err == nil {
				return path, nil
			}
		}
	default:
		if shell := s.getenv("SHELL"); shell != "" {
			return shell, nil
		}
		for _, candidate := range []string{"bash", "sh"} {
			if path, err := s.lookPath(candidate); err == nil {
				return path, nil
			}
		}
	}
	return "", errors.New("no shell found")
}

// shellArgs returns the arguments placed before the script
func (s *NativeShell) shellArgs(shell string) []string {
	if len(s.ShellArgs) > 0 {
		return append([]string(nil), s.ShellArgs...)
	}

	base := strings.TrimSuffix(filepath.Base(shell), ".exe")
	switch base {
	case "cmd":
		return []string{"/C"}
	case "powershell", "pwsh":
		return []string{"-NoProfile", "-Command"}
	default:
		return []string{"-c"}
	}
}
