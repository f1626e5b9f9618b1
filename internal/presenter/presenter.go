// SPDX-License-Identifier: MPL-2.0

// Package presenter renders run progress and asks the user questions.
//
// A Presenter is chosen at startup: plain writes styled text lines, gum
// shells out to the gum binary when it is installed, and tui uses huh
// forms. Every presenter also acts as the runner's Observer.
package presenter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/adriancmiranda/envspec/internal/i18n"
	"github.com/adriancmiranda/envspec/internal/runner"
	"github.com/adriancmiranda/envspec/internal/tui"
	"github.com/adriancmiranda/envspec/pkg/envspecfile"

	"golang.org/x/term"
)

const (
	// KindAuto picks gum when available on a terminal, plain otherwise.
	KindAuto Kind = "auto"
	// KindPlain writes styled text lines.
	KindPlain Kind = "plain"
	// KindGum renders through the gum binary.
	KindGum Kind = "gum"
	// KindTUI prompts with huh forms.
	KindTUI Kind = "tui"
)

// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
var ErrInvalidKind = errors.New("invalid presenter")

type (
	// Kind names a presenter implementation.
	Kind string

	// InvalidKindError is returned when a Kind value is not recognized.
	InvalidKindError struct {
		Value Kind
	}

	// Presenter renders progress and prompts.
	Presenter interface {
		runner.Observer
		// Name returns the presenter kind actually in use.
		Name() Kind
		// Begin announces a run.
		Begin(spec *envspecfile.Spec, dryRun bool)
		// Finish renders the final report.
		Finish(report *runner.Report)
		// Confirm asks a yes/no question.
		Confirm(title string) (bool, error)
		// Choose asks for a subset of options and returns their indices in
		// ascending order.
		Choose(title string, options []string) ([]int, error)
	}

	// Options configures presenter construction.
	Options struct {
		Out     io.Writer
		Err     io.Writer
		In      io.Reader
		Printer *i18n.Printer
		Theme   tui.Theme
		Verbose bool
		// LookPath finds the gum binary; defaults to exec.LookPath.
		LookPath func(string) (string, error)
		// IsTerminal reports whether Out is a terminal; defaults to
		// checking os.Stdout.
		IsTerminal func() bool
	}
)

// Error implements the error interface.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid presenter %q (valid: auto, plain, gum, tui)", e.Value)
}

// Unwrap returns ErrInvalidKind for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// Validate returns an error if the Kind is not recognized. The zero value
// means auto.
func (k Kind) Validate() error {
	switch k {
	case "", KindAuto, KindPlain, KindGum, KindTUI:
		return nil
	default:
		return &InvalidKindError{Value: k}
	}
}

// String returns the string representation of the Kind.
func (k Kind) String() string { return string(k) }

// New returns the presenter for kind. An explicitly requested gum that is
// not installed falls back to plain after printing a warning to opts.Err.
func New(kind Kind, opts Options) (Presenter, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	gumPath, gumErr := opts.LookPath("gum")
	hasGum := gumErr == nil

	switch kind {
	case KindPlain:
		return NewPlain(opts), nil
	case KindTUI:
		return NewTUI(opts), nil
	case KindGum:
		if hasGum {
			return NewGum(gumPath, opts), nil
		}
		fmt.Fprintln(opts.Err, lineStyles[lineWarning].Render(opts.Printer.T(i18n.GumFallback)))
		return NewPlain(opts), nil
	default:
		if hasGum && opts.IsTerminal() {
			return NewGum(gumPath, opts), nil
		}
		return NewPlain(opts), nil
	}
}

func (o Options) withDefaults() Options {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Printer == nil {
		o.Printer = i18n.NewPrinter(i18n.Portuguese)
	}
	if o.LookPath == nil {
		o.LookPath = exec.LookPath
	}
	if o.IsTerminal == nil {
		o.IsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	}
	return o
}
