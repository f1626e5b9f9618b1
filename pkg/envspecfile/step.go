// SPDX-License-Identifier: MPL-2.0

package envspecfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adriancmiranda/envspec/pkg/types"
)

const (
	// KindPackage installs a package through the host package manager.
	KindPackage StepKind = "package"
	// KindFile writes (or appends) content to a file.
	KindFile StepKind = "file"
	// KindEnv sets a variable in the run environment.
	KindEnv StepKind = "env"
	// KindShell runs a shell command.
	KindShell StepKind = "shell"
	// KindDotenv merges a dotenv file into the run environment.
	KindDotenv StepKind = "dotenv"

	// ShellNative runs commands with the host shell.
	ShellNative ShellMode = "native"
	// ShellVirtual runs commands with the embedded mvdan/sh interpreter.
	ShellVirtual ShellMode = "virtual"
)

var (
	// ErrInvalidStepKind is the sentinel error wrapped by InvalidStepKindError.
	ErrInvalidStepKind = errors.New("invalid step kind")
	// ErrInvalidShellMode is the sentinel error wrapped by InvalidShellModeError.
	ErrInvalidShellMode = errors.New("invalid shell mode")
)

type (
	// StepKind discriminates the Step variants.
	StepKind string

	// InvalidStepKindError is returned when a StepKind value is not recognized.
	InvalidStepKindError struct {
		Value StepKind
	}

	// ShellMode selects how a shell step is executed.
	// The zero value ("") means "use the configured default".
	ShellMode string

	// InvalidShellModeError is returned when a ShellMode value is not recognized.
	InvalidShellModeError struct {
		Value ShellMode
	}

	// Action is the kind-specific payload of a Step. The concrete types are
	// PackageInstall, FileWrite, EnvVarSet, ShellCommand and EnvFile.
	Action interface {
		Kind() StepKind
		// Describe returns a short human-readable summary of the action.
		Describe() string
	}

	// Step is one unit of setup work.
	Step struct {
		// Name is an optional label shown in progress output.
		Name string
		// Optional steps do not halt the run when they fail.
		Optional bool
		// Action holds the kind-specific fields.
		Action Action
	}

	// PackageInstall installs a package.
	PackageInstall struct {
		Package string
		// Manager forces a package manager; empty means auto-detect.
		Manager string
		// Binary names an executable whose presence on PATH means the
		// package is already installed.
		Binary string
	}

	// FileWrite writes Content to Path.
	FileWrite struct {
		Path    string
		Content string
		Mode    types.FileMode
		Append  bool
	}

	// EnvVarSet sets Name to Value in the run environment. Value may
	// reference earlier variables as $VAR or ${VAR}.
	EnvVarSet struct {
		Name  string
		Value string
	}

	// ShellCommand runs Command through a shell.
	ShellCommand struct {
		Command string
		// Dir overrides the run working directory for this command.
		Dir   string
		Shell ShellMode
	}

	// EnvFile loads a dotenv file into the run environment. A trailing "?"
	// on Path marks the file as optional.
	EnvFile struct {
		Path string
	}
)

// Error implements the error interface.
func (e *InvalidStepKindError) Error() string {
	return fmt.Sprintf("invalid step kind %q (valid: package, file, env, shell, dotenv)", e.Value)
}

// Unwrap returns ErrInvalidStepKind for errors.Is() compatibility.
func (e *InvalidStepKindError) Unwrap() error { return ErrInvalidStepKind }

// Validate returns an error if the StepKind is not recognized.
func (k StepKind) Validate() error {
	switch k {
	case KindPackage, KindFile, KindEnv, KindShell, KindDotenv:
		return nil
	default:
		return &InvalidStepKindError{Value: k}
	}
}

// String returns the string representation of the StepKind.
func (k StepKind) String() string { return string(k) }

// Error implements the error interface.
func (e *InvalidShellModeError) Error() string {
	return fmt.Sprintf("invalid shell mode %q (valid: native, virtual)", e.Value)
}

// Unwrap returns ErrInvalidShellMode for errors.Is() compatibility.
func (e *InvalidShellModeError) Unwrap() error { return ErrInvalidShellMode }

// Validate returns an error if the ShellMode is not recognized.
// The zero value is valid.
func (m ShellMode) Validate() error {
	switch m {
	case "", ShellNative, ShellVirtual:
		return nil
	default:
		return &InvalidShellModeError{Value: m}
	}
}

// Kind returns the StepKind of the step's action.
func (s Step) Kind() StepKind {
	if s.Action == nil {
		return ""
	}
	return s.Action.Kind()
}

// Label returns the step name, or the action summary when unnamed.
func (s Step) Label() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Action == nil {
		return "<empty step>"
	}
	return s.Action.Describe()
}

// Kind implements Action.
func (PackageInstall) Kind() StepKind { return KindPackage }

// Describe implements Action.
func (a PackageInstall) Describe() string {
	if a.Manager != "" {
		return fmt.Sprintf("install %s (%s)", a.Package, a.Manager)
	}
	return "install " + a.Package
}

// Kind implements Action.
func (FileWrite) Kind() StepKind { return KindFile }

// Describe implements Action.
func (a FileWrite) Describe() string {
	if a.Append {
		return "append to " + a.Path
	}
	return "write " + a.Path
}

// Kind implements Action.
func (EnvVarSet) Kind() StepKind { return KindEnv }

// Describe implements Action.
func (a EnvVarSet) Describe() string { return fmt.Sprintf("set %s=%s", a.Name, a.Value) }

// Kind implements Action.
func (ShellCommand) Kind() StepKind { return KindShell }

// Describe implements Action.
func (a ShellCommand) Describe() string {
	line, _, multi := strings.Cut(strings.TrimSpace(a.Command), "\n")
	if multi {
		line += " ..."
	}
	return "run " + line
}

// Kind implements Action.
func (EnvFile) Kind() StepKind { return KindDotenv }

// Describe implements Action.
func (a EnvFile) Describe() string { return "load " + strings.TrimSuffix(a.Path, "?") }

// IsOptional reports whether a missing file should be ignored.
func (a EnvFile) IsOptional() bool { return strings.HasSuffix(a.Path, "?") }
