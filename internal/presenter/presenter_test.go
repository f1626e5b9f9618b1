// SPDX-License-Identifier: MPL-2.0

package presenter

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/adriancmiranda/envspec/internal/i18n"
	"github.com/adriancmiranda/envspec/internal/runner"
	"github.com/adriancmiranda/envspec/internal/tui"
	"github.com/adriancmiranda/envspec/pkg/envspecfile"
)

func lookPath(found bool) func(string) (string, error) {
	return func(name string) (string, error) {
		if found {
			return "/usr/local/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
}

func englishOptions(out, errOut *bytes.Buffer, in string) Options {
	return Options{
		Out:     out,
		Err:     errOut,
		In:      strings.NewReader(in),
		Printer: i18n.NewPrinter(i18n.English),
	}
}

func TestNew_Selection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		kind        Kind
		gum         bool
		tty         bool
		want        Kind
		wantWarning bool
	}{
		{name: "auto with gum on tty", kind: KindAuto, gum: true, tty: true, want: KindGum},
		{name: "auto with gum without tty", kind: KindAuto, gum: true, tty: false, want: KindPlain},
		{name: "auto without gum", kind: KindAuto, gum: false, tty: true, want: KindPlain},
		{name: "empty means auto", kind: "", gum: false, want: KindPlain},
		{name: "explicit plain", kind: KindPlain, gum: true, tty: true, want: KindPlain},
		{name: "explicit gum available", kind: KindGum, gum: true, want: KindGum},
		{name: "explicit gum missing falls back", kind: KindGum, gum: false, want: KindPlain, wantWarning: true},
		{name: "explicit tui", kind: KindTUI, want: KindTUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out, errOut bytes.Buffer
			opts := englishOptions(&out, &errOut, "")
			opts.LookPath = lookPath(tt.gum)
			opts.IsTerminal = func() bool { return tt.tty }

			p, err := New(tt.kind, opts)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if p.Name() != tt.want {
				t.Errorf("Name() = %s, want %s", p.Name(), tt.want)
			}
			hasWarning := strings.Contains(errOut.String(), "gum not found")
			if hasWarning != tt.wantWarning {
				t.Errorf("warning printed = %v, want %v (stderr: %q)", hasWarning, tt.wantWarning, errOut.String())
			}
		})
	}
}

func TestNew_InvalidKind(t *testing.T) {
	t.Parallel()

	if _, err := New("fancy", Options{}); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("New(fancy) error = %v, want ErrInvalidKind", err)
	}
}

func TestPlain_Progress(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	pl := NewPlain(englishOptions(&out, &errOut, ""))

	spec := envspecfile.New("laptop",
		envspecfile.Step{Name: "editor", Action: envspecfile.EnvVarSet{Name: "EDITOR", Value: "vim"}},
		envspecfile.Step{Optional: true, Action: envspecfile.ShellCommand{Command: "false"}},
	)
	report := &runner.Report{Results: []runner.StepResult{
		{Index: 0, Name: "editor", Outcome: runner.OutcomeSuccess},
		{Index: 1, Summary: "run false", Optional: true, Outcome: runner.OutcomeFailed, Err: errors.New("exit status 1")},
	}}

	pl.Begin(spec, false)
	for _, res := range report.Results {
		pl.StepFinished(res)
	}
	pl.Finish(report)

	got := out.String()
	for _, want := range []string{
		"Applying laptop (2 steps)",
		"✓ [1/2] editor",
		"✗ [2/2] run false: failed (optional): exit status 1",
		"Environment ready (1 ok, 0 skipped, 1 failed)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPlain_DryRunAndHalt(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	pl := NewPlain(englishOptions(&out, &errOut, ""))

	pl.Begin(envspecfile.New("x", envspecfile.Step{Action: envspecfile.EnvVarSet{Name: "A", Value: "1"}}), true)
	pl.Finish(&runner.Report{
		Halted:  true,
		Results: []runner.StepResult{{Index: 0, Outcome: runner.OutcomeFailed, Err: errors.New("boom")}},
	})

	got := out.String()
	if !strings.Contains(got, "dry run: nothing will be changed") {
		t.Errorf("missing dry-run notice:\n%s", got)
	}
	if !strings.Contains(got, "Run halted at step 1") {
		t.Errorf("missing halt line:\n%s", got)
	}
}

func TestPlain_Confirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"\n", true},
		{"", true},
		{"y\n", true},
		{"sim\n", true},
		{"n\n", false},
		{"NO\n", false},
		{"não\n", false},
	}

	for _, tt := range tests {
		var out, errOut bytes.Buffer
		pl := NewPlain(englishOptions(&out, &errOut, tt.input))
		got, err := pl.Confirm("Apply?")
		if err != nil {
			t.Fatalf("Confirm(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Apply? [Y/n]") {
			t.Errorf("prompt not printed: %q", out.String())
		}
	}
}

func TestPlain_ChooseReturnsAll(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	got, err := NewPlain(englishOptions(&out, &errOut, "")).Choose("pick", []string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !slices.Equal(got, want) {
		t.Errorf("Choose() = %v, want %v", got, want)
	}
}

type gumCall struct {
	args []string
}

func fakeGum(calls *[]gumCall, code int, stdout string) gumExecFunc {
	return func(_ string, args []string, _ io.Reader, out, _ io.Writer) (int, error) {
		*calls = append(*calls, gumCall{args: args})
		if stdout != "" {
			_, _ = io.WriteString(out, stdout)
		}
		return code, nil
	}
}

func TestGum_Confirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code    int
		want    bool
		wantErr error
	}{
		{code: 0, want: true},
		{code: 1, want: false},
		{code: 130, wantErr: tui.ErrCancelled},
	}

	for _, tt := range tests {
		var out, errOut bytes.Buffer
		var calls []gumCall
		g := NewGum("gum", englishOptions(&out, &errOut, ""))
		g.exec = fakeGum(&calls, tt.code, "")

		got, err := g.Confirm("Apply?")
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("code %d: error = %v, want %v", tt.code, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("code %d: Confirm() = %v, want %v", tt.code, got, tt.want)
		}
		if len(calls) != 1 || calls[0].args[0] != "confirm" {
			t.Errorf("calls = %v", calls)
		}
	}
}

func TestGum_Choose(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	var calls []gumCall
	g := NewGum("gum", englishOptions(&out, &errOut, ""))
	g.exec = fakeGum(&calls, 0, "install git\nset EDITOR=vim\n")

	got, err := g.Choose("Select", []string{"install git", "write ~/.gitconfig", "set EDITOR=vim"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 2}; !slices.Equal(got, want) {
		t.Errorf("Choose() = %v, want %v", got, want)
	}
	args := calls[0].args
	if args[0] != "choose" || !slices.Contains(args, "--no-limit") {
		t.Errorf("args = %v", args)
	}
}

func TestGum_OptionsAfterSeparator(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	var calls []gumCall
	g := NewGum("gum", englishOptions(&out, &errOut, ""))
	g.exec = fakeGum(&calls, 0, "--help\n")

	options := []string{"--help", "-x"}
	got, err := g.Choose("Select", options)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0}; !slices.Equal(got, want) {
		t.Errorf("Choose() = %v, want %v", got, want)
	}
	args := calls[0].args
	sep := slices.Index(args, "--")
	if sep < 0 {
		t.Fatalf("no -- separator in %v", args)
	}
	if tail := args[sep+1:]; !slices.Equal(tail, options) {
		t.Errorf("args after -- = %v, want %v", tail, options)
	}

	if _, err := g.Confirm("-y"); err != nil {
		t.Fatal(err)
	}
	confirm := calls[1].args
	if n := len(confirm); n < 2 || confirm[n-2] != "--" || confirm[n-1] != "-y" {
		t.Errorf("confirm args = %v", confirm)
	}
}

func TestGum_StyleFallsBackToPlain(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	g := NewGum("gum", englishOptions(&out, &errOut, ""))
	g.exec = func(string, []string, io.Reader, io.Writer, io.Writer) (int, error) {
		return -1, errors.New("exec format error")
	}

	g.Begin(envspecfile.New("box", envspecfile.Step{Action: envspecfile.EnvVarSet{Name: "A", Value: "1"}}), false)
	if !strings.Contains(out.String(), "Applying box (1 steps)") {
		t.Errorf("fallback output = %q", out.String())
	}
}

func TestGum_StyleArgs(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	var calls []gumCall
	g := NewGum("gum", englishOptions(&out, &errOut, ""))
	g.exec = fakeGum(&calls, 0, "")

	g.StepFinished(runner.StepResult{Index: 0, Summary: "set A=1", Outcome: runner.OutcomeSuccess})

	if len(calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(calls))
	}
	args := calls[0].args
	if args[0] != "style" || args[2] != string(ColorSuccess) {
		t.Errorf("args = %v", args)
	}
	if !strings.Contains(args[len(args)-1], "set A=1") {
		t.Errorf("text arg = %q", args[len(args)-1])
	}
}

func TestMatchChoices_Duplicates(t *testing.T) {
	t.Parallel()

	got := matchChoices([]string{"run x", "run x", "run y"}, "run x\nrun x\n")
	if want := []int{0, 1}; !slices.Equal(got, want) {
		t.Errorf("matchChoices() = %v, want %v", got, want)
	}
	if got := matchChoices([]string{"a"}, ""); len(got) != 0 {
		t.Errorf("empty output = %v, want none", got)
	}
}
