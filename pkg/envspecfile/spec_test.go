// SPDX-License-Identifier: MPL-2.0

package envspecfile

import (
	"errors"
	"testing"

	"github.com/adriancmiranda/envspec/pkg/types"
)

func TestSpec_StepsReturnsCopy(t *testing.T) {
	t.Parallel()

	steps := []Step{{Name: "one", Action: EnvVarSet{Name: "A", Value: "1"}}}
	spec := New("demo", steps...)

	steps[0].Name = "mutated"
	got := spec.Steps()
	got[0].Name = "also mutated"

	if spec.Steps()[0].Name != "one" {
		t.Errorf("spec was mutated through a returned slice: %q", spec.Steps()[0].Name)
	}
}

func TestValidate_ProgrammaticSpec(t *testing.T) {
	t.Parallel()

	spec := New("bad",
		Step{Action: nil},
		Step{Action: PackageInstall{}},
		Step{Action: FileWrite{Path: "x", Mode: "999"}},
		Step{Action: ShellCommand{Command: "true", Shell: "zsh"}},
		Step{Action: EnvFile{Path: "?"}},
		Step{Action: EnvVarSet{Name: "OK", Value: ""}},
	)

	errs := Validate(spec)
	if len(errs) != 5 {
		t.Fatalf("Validate() returned %d errors, want 5: %v", len(errs), errs)
	}
	for _, err := range errs {
		if !errors.Is(err, ErrInvalidStep) {
			t.Errorf("error should match ErrInvalidStep: %v", err)
		}
	}

	var shellErr *InvalidShellModeError
	if !errors.As(error(errs), &shellErr) {
		t.Error("expected an InvalidShellModeError in the collected errors")
	}
}

func TestStep_Label(t *testing.T) {
	t.Parallel()

	tests := []struct {
		step Step
		want string
	}{
		{step: Step{Name: "named", Action: EnvVarSet{Name: "A"}}, want: "named"},
		{step: Step{Action: PackageInstall{Package: "git"}}, want: "install git"},
		{step: Step{Action: PackageInstall{Package: "git", Manager: "brew"}}, want: "install git (brew)"},
		{step: Step{Action: FileWrite{Path: "a", Append: true}}, want: "append to a"},
		{step: Step{Action: ShellCommand{Command: "make\nmake install"}}, want: "run make ..."},
		{step: Step{Action: EnvFile{Path: ".env?"}}, want: "load .env"},
		{step: Step{}, want: "<empty step>"},
	}

	for _, tt := range tests {
		if got := tt.step.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestStepKind_Validate(t *testing.T) {
	t.Parallel()

	for _, k := range []StepKind{KindPackage, KindFile, KindEnv, KindShell, KindDotenv} {
		if err := k.Validate(); err != nil {
			t.Errorf("%s.Validate() = %v", k, err)
		}
	}
	if err := StepKind("reboot").Validate(); !errors.Is(err, ErrInvalidStepKind) {
		t.Errorf("expected ErrInvalidStepKind, got %v", err)
	}
}

func TestValidate_DescriptionAndPaths(t *testing.T) {
	t.Parallel()

	spec := New("paths",
		Step{Action: FileWrite{Path: "a\x00b"}},
		Step{Action: EnvFile{Path: "  ?"}},
	)
	spec.Description = "   "

	errs := Validate(spec)
	if len(errs) != 3 {
		t.Fatalf("Validate() returned %d errors, want 3: %v", len(errs), errs)
	}
	if !errors.Is(errs[0], types.ErrInvalidDescriptionText) {
		t.Errorf("errs[0] = %v, want ErrInvalidDescriptionText", errs[0])
	}
	for _, err := range errs[1:] {
		if !errors.Is(err, types.ErrInvalidFilesystemPath) {
			t.Errorf("%v should match ErrInvalidFilesystemPath", err)
		}
	}
}
