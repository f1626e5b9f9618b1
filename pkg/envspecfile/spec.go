// SPDX-License-Identifier: MPL-2.0

package envspecfile

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrParse is the sentinel error matched by every *ParseError.
var ErrParse = errors.New("malformed spec")

type (
	// Spec is an ordered, immutable list of setup steps.
	Spec struct {
		// Name is an optional title for progress output.
		Name string
		// Description is optional free text.
		Description string
		// FilePath is the file the spec was loaded from (empty when built in code).
		FilePath string

		steps []Step
	}

	// ParseError reports a spec that could not be read, decoded or validated.
	// It matches ErrParse with errors.Is and unwraps to the underlying cause.
	ParseError struct {
		Path string
		Err  error
	}

	// ValidationErrors collects the semantic problems found in a decoded spec.
	ValidationErrors []error
)

// New builds a Spec from steps. The steps slice is copied.
func New(name string, steps ...Step) *Spec {
	return &Spec{Name: name, steps: slices.Clone(steps)}
}

// Steps returns a copy of the spec's steps in declaration order.
func (s *Spec) Steps() []Step {
	return slices.Clone(s.steps)
}

// Len returns the number of steps.
func (s *Spec) Len() int { return len(s.steps) }

// Title returns the spec name, falling back to the file path.
func (s *Spec) Title() string {
	if s.Name != "" {
		return s.Name
	}
	if s.FilePath != "" {
		return s.FilePath
	}
	return "envspec"
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed spec: %v", e.Err)
	}
	return fmt.Sprintf("malformed spec %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	if len(v) == 1 {
		return v[0].Error()
	}
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors:\n  %s", len(v), strings.Join(msgs, "\n  "))
}

// Unwrap returns the collected errors for errors.Is/As traversal.
func (v ValidationErrors) Unwrap() []error { return v }
