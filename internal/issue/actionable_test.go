// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "apply spec"},
			want: "failed to apply spec",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "parse spec", Resource: "envspec.cue"},
			want: "failed to parse spec: envspec.cue",
		},
		{
			name: "with resource and cause",
			err:  &ActionableError{Operation: "parse spec", Resource: "envspec.cue", Cause: errors.New("bad kind")},
			want: "failed to parse spec: envspec.cue: bad kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("no such file")
	err := NewErrorContext().
		WithOperation("read spec").
		WithResource("x.cue").
		WithSuggestion("Check the path").
		WithSuggestions("Run 'envspec init'", "Pass --workdir").
		Wrap(fmt.Errorf("open: %w", root)).
		Build()

	short := err.Format(false)
	if !strings.Contains(short, "  • Check the path") || !strings.Contains(short, "  • Pass --workdir") {
		t.Errorf("Format(false) missing suggestions:\n%s", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("Format(false) should not include the chain:\n%s", short)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "1. open: no such file") || !strings.Contains(verbose, "2. no such file") {
		t.Errorf("Format(true) chain incomplete:\n%s", verbose)
	}
	if !errors.Is(err, root) {
		t.Error("errors.Is should reach the root cause")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil")
	}
}

func TestAsActionable(t *testing.T) {
	t.Parallel()

	inner := NewErrorContext().WithOperation("run step").WithIssue(StepFailedId).BuildError()
	wrapped := fmt.Errorf("outer: %w", inner)

	ae, ok := AsActionable(wrapped)
	if !ok {
		t.Fatal("AsActionable() = false")
	}
	if ae.Issue() == nil || ae.Issue().Id() != StepFailedId {
		t.Errorf("Issue() = %v, want StepFailedId page", ae.Issue())
	}

	if _, ok := AsActionable(errors.New("plain")); ok {
		t.Error("AsActionable(plain) = true")
	}
	if (&ActionableError{Operation: "x"}).Issue() != nil {
		t.Error("Issue() without id should be nil")
	}
}
