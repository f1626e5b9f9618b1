// SPDX-License-Identifier: MPL-2.0

package presenter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/adriancmiranda/envspec/internal/i18n"
	"github.com/adriancmiranda/envspec/internal/runner"
	"github.com/adriancmiranda/envspec/pkg/envspecfile"
)

// Plain writes one styled line per event.
type Plain struct {
	out     io.Writer
	in      *bufio.Reader
	p       *i18n.Printer
	verbose bool
	total   int

	// emit renders one line; the gum presenter swaps it out.
	emit func(kind lineKind, text string)
}

// NewPlain creates a plain presenter.
func NewPlain(opts Options) *Plain {
	opts = opts.withDefaults()
	pl := &Plain{
		out:     opts.Out,
		in:      bufio.NewReader(opts.In),
		p:       opts.Printer,
		verbose: opts.Verbose,
	}
	pl.emit = pl.writeLine
	return pl
}

// Name implements Presenter.
func (pl *Plain) Name() Kind { return KindPlain }

// Begin implements Presenter.
func (pl *Plain) Begin(spec *envspecfile.Spec, dryRun bool) {
	pl.total = spec.Len()
	pl.emit(lineTitle, "▸ "+pl.p.T(i18n.RunBegin, spec.Title(), spec.Len()))
	if dryRun {
		pl.emit(lineMuted, "  "+pl.p.T(i18n.RunDryRun))
	}
}

// StepStarted implements runner.Observer.
func (pl *Plain) StepStarted(index int, step envspecfile.Step) {
	if pl.verbose {
		pl.emit(lineMuted, fmt.Sprintf("  → %s %s", pl.counter(index), step.Label()))
	}
}

// StepFinished implements runner.Observer.
func (pl *Plain) StepFinished(res runner.StepResult) {
	pl.emit(outcomeLine(res.Outcome), pl.formatResult(res))
}

// Finish implements Presenter.
func (pl *Plain) Finish(report *runner.Report) {
	summary := pl.p.T(i18n.RunSummary,
		report.Count(runner.OutcomeSuccess),
		report.Count(runner.OutcomeSkipped),
		report.Count(runner.OutcomeFailed))

	switch {
	case report.Success():
		pl.emit(lineSuccess, pl.p.T(i18n.RunSucceeded)+" ("+summary+")")
	case report.Halted && len(report.Results) > 0:
		last := report.Results[len(report.Results)-1]
		pl.emit(lineError, pl.p.T(i18n.RunHalted, last.Index+1)+" ("+summary+")")
	default:
		pl.emit(lineError, pl.p.T(i18n.RunFailed)+" ("+summary+")")
	}
}

// Confirm prints title and reads a yes/no answer. Empty input or EOF
// counts as yes.
func (pl *Plain) Confirm(title string) (bool, error) {
	fmt.Fprint(pl.out, lineStyles[lineInfo].Render(title)+" [Y/n] ")
	answer, err := pl.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(pl.out)
	}
	return parseAnswer(answer), nil
}

// Choose returns every option; plain output has no selection widget.
func (pl *Plain) Choose(_ string, options []string) ([]int, error) {
	all := make([]int, len(options))
	for i := range options {
		all[i] = i
	}
	return all, nil
}

func (pl *Plain) writeLine(kind lineKind, text string) {
	fmt.Fprintln(pl.out, lineStyles[kind].Render(text))
}

func (pl *Plain) counter(index int) string {
	return fmt.Sprintf("[%d/%d]", index+1, pl.total)
}

func (pl *Plain) formatResult(res runner.StepResult) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(outcomeIcon(res.Outcome))
	b.WriteString(" ")
	b.WriteString(pl.counter(res.Index))
	b.WriteString(" ")
	b.WriteString(res.Label())

	switch res.Outcome {
	case runner.OutcomeSkipped:
		b.WriteString(" (" + pl.p.T(i18n.StepSkipped) + ")")
	case runner.OutcomeFailed:
		b.WriteString(": " + pl.p.T(i18n.StepFailed))
		if res.Optional {
			b.WriteString(" (" + pl.p.T(i18n.StepOptional) + ")")
		}
		if res.Err != nil {
			b.WriteString(": " + res.Err.Error())
		}
	}
	return b.String()
}

func outcomeIcon(o runner.Outcome) string {
	switch o {
	case runner.OutcomeSuccess:
		return "✓"
	case runner.OutcomeSkipped:
		return "-"
	default:
		return "✗"
	}
}

func outcomeLine(o runner.Outcome) lineKind {
	switch o {
	case runner.OutcomeSuccess:
		return lineSuccess
	case runner.OutcomeSkipped:
		return lineMuted
	default:
		return lineError
	}
}

// parseAnswer accepts y/yes/s/sim and n/no/não/nao; anything else is the default (yes).
func parseAnswer(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "n", "no", "não", "nao":
		return false
	default:
		return true
	}
}
