// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestSchemaError_Error(t *testing.T) {
	t.Parallel()

	one := &SchemaError{File: "envspec.cue", Violations: []Violation{
		{Path: "steps[2].command", Element: `shell "build"`, Message: "incomplete value string"},
	}}
	if got, want := one.Error(), `envspec.cue: steps[2].command (shell "build"): incomplete value string`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	many := &SchemaError{File: "envspec.cue", Violations: []Violation{
		{Line: 3, Message: "expected operand"},
		{Path: "name", Message: "conflicting values"},
	}}
	want := "envspec.cue: 2 schema violations:\n  line 3: expected operand\n  name: conflicting values"
	if got := many.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(many, ErrSchema) {
		t.Error("SchemaError should match ErrSchema")
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	if err := FormatError(nil, "config.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v", err)
	}

	plain := errors.New("disk on fire")
	err := FormatError(plain, "config.cue")
	if !errors.Is(err, plain) || !strings.HasPrefix(err.Error(), "config.cue: ") {
		t.Errorf("FormatError(plain) = %v", err)
	}
	if errors.Is(err, ErrSchema) {
		t.Error("non-CUE error should not be a schema violation")
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"ui"}, "ui"},
		{[]string{"ui", "presenter"}, "ui.presenter"},
		{[]string{"steps", "0", "kind"}, "steps[0].kind"},
		{[]string{"matrix", "1", "2"}, "matrix[1][2]"},
		{[]string{"0"}, "0"},
	}
	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 100), 100, "envspec.cue"); err != nil {
		t.Errorf("at limit: %v", err)
	}
	err := CheckFileSize(make([]byte, 101), 100, "envspec.cue")
	if err == nil {
		t.Fatal("over limit: expected error")
	}
	for _, part := range []string{"envspec.cue", "101", "100"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("error %q should contain %q", err.Error(), part)
		}
	}
}
