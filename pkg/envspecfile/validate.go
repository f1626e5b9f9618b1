// SPDX-License-Identifier: MPL-2.0

package envspecfile

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/adriancmiranda/envspec/pkg/types"

	"mvdan.cc/sh/v3/syntax"
)

var (
	// ErrInvalidStep is the sentinel error wrapped by StepError.
	ErrInvalidStep = errors.New("invalid step")

	envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	knownManagers = map[string]bool{
		"brew": true, "apt": true, "dnf": true, "pacman": true, "apk": true, "winget": true,
	}
)

// StepError locates a validation problem at a step index.
type StepError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("steps[%d]: %v", e.Index, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StepError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidStep.
func (e *StepError) Is(target error) bool { return target == ErrInvalidStep }

// Validate checks the constraints the CUE schema cannot express and the
// ones programmatically built specs skip. It returns nil for a valid spec.
func Validate(spec *Spec) ValidationErrors {
	var errs ValidationErrors
	if err := types.DescriptionText(spec.Description).Validate(); err != nil {
		errs = append(errs, err)
	}
	seen := make(map[string]int)

	for i, step := range spec.steps {
		if step.Name != "" {
			if first, dup := seen[step.Name]; dup {
				errs = append(errs, &StepError{Index: i, Err: fmt.Errorf("duplicate step name %q (first used by steps[%d])", step.Name, first)})
			} else {
				seen[step.Name] = i
			}
		}

		if err := validateAction(step.Action); err != nil {
			errs = append(errs, &StepError{Index: i, Err: err})
		}
	}

	return errs
}

func validateAction(action Action) error {
	if action == nil {
		return errors.New("step has no action")
	}
	if err := action.Kind().Validate(); err != nil {
		return err
	}

	switch a := action.(type) {
	case PackageInstall:
		if strings.TrimSpace(a.Package) == "" {
			return errors.New("package name is required")
		}
		if a.Manager != "" && !knownManagers[a.Manager] {
			return fmt.Errorf("unknown package manager %q", a.Manager)
		}
	case FileWrite:
		if err := types.FilesystemPath(a.Path).Validate(); err != nil {
			return err
		}
		if err := a.Mode.Validate(); err != nil {
			return err
		}
	case EnvVarSet:
		if !envNamePattern.MatchString(a.Name) {
			return fmt.Errorf("invalid environment variable name %q", a.Name)
		}
	case ShellCommand:
		if strings.TrimSpace(a.Command) == "" {
			return errors.New("shell command is required")
		}
		if err := a.Shell.Validate(); err != nil {
			return err
		}
		// Only the embedded interpreter is guaranteed to share the parser's
		// dialect; host shells may accept syntax it rejects.
		if a.Shell == ShellVirtual {
			if _, err := syntax.NewParser().Parse(strings.NewReader(a.Command), "command"); err != nil {
				return fmt.Errorf("command syntax error: %w", err)
			}
		}
	case EnvFile:
		if err := types.FilesystemPath(strings.TrimSuffix(a.Path, "?")).Validate(); err != nil {
			return err
		}
	}

	return nil
}
