// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestState_Resolve(t *testing.T) {
	t.Parallel()

	work := filepath.Join(string(filepath.Separator)+"work", "dir")
	home := filepath.Join(string(filepath.Separator)+"home", "me")
	s := NewState(work, map[string]string{"HOME": home})

	tests := []struct {
		in   string
		want string
	}{
		{"file.txt", filepath.Join(work, "file.txt")},
		{"a/b", filepath.Join(work, "a", "b")},
		{"~", home},
		{"~/.gitconfig", filepath.Join(home, ".gitconfig")},
		{"~user/x", filepath.Join(work, "~user", "x")},
	}

	for _, tt := range tests {
		got, err := s.Resolve(tt.in)
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestState_WithEnvCopies(t *testing.T) {
	t.Parallel()

	s := NewState("/", map[string]string{"A": "1"})
	next := s.WithEnv("B", "2")

	if _, ok := s.Env["B"]; ok {
		t.Error("WithEnv mutated the receiver")
	}
	if next.Env["A"] != "1" || next.Env["B"] != "2" {
		t.Errorf("next.Env = %v", next.Env)
	}
}

func TestState_Exports(t *testing.T) {
	t.Parallel()

	s := NewState("/", map[string]string{"B": "it's", "A": "x y"})
	got := strings.Join(s.Exports(), "\n")
	want := "export A='x y'\nexport B='it'\\''s'"
	if got != want {
		t.Errorf("Exports() =\n%s\nwant\n%s", got, want)
	}
}

func TestOutcome_Validate(t *testing.T) {
	t.Parallel()

	for _, o := range []Outcome{OutcomeSuccess, OutcomeSkipped, OutcomeFailed} {
		if err := o.Validate(); err != nil {
			t.Errorf("%s.Validate() = %v", o, err)
		}
	}
	if err := Outcome("partial").Validate(); err == nil {
		t.Error("Validate() accepted unknown outcome")
	}
}
