// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/adriancmiranda/envspec/internal/i18n"
	"github.com/adriancmiranda/envspec/internal/issue"

	"github.com/charmbracelet/fang"
)

// formatErrorForDisplay formats an error for user display.
// ActionableErrors use their Format method; verbose mode adds the chain.
func formatErrorForDisplay(err error, verbose bool) string {
	if ae, ok := issue.AsActionable(err); ok {
		return ae.Format(verbose)
	}
	return err.Error()
}

// errorHandler returns the fang error handler for a session. Usage errors
// print the banner first, already-reported failures print nothing, and
// actionable errors with a linked issue page render it in verbose mode.
func (s *session) errorHandler() fang.ErrorHandler {
	return func(w io.Writer, _ fang.Styles, err error) {
		renderError(w, s.printer, err, s.verbose(), s.glamourStyle())
	}
}

func renderError(w io.Writer, p *i18n.Printer, err error, verbose bool, style string) {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprint(w, usageErr.Usage)
		fmt.Fprintln(w)
		fmt.Fprintln(w, ErrorStyle.Render(p.T(i18n.ErrorLabel))+" "+usageErr.Reason)
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render(p.T(i18n.ErrorLabel))+" "+formatErrorForDisplay(err, verbose))

	if !verbose {
		return
	}
	ae, ok := issue.AsActionable(err)
	if !ok || ae.Issue() == nil {
		return
	}
	page, renderErr := ae.Issue().Render(style)
	if renderErr != nil {
		return
	}
	fmt.Fprint(w, strings.TrimRight(page, "\n")+"\n")
}

// glamourStyle picks a colored style on terminals and plain text otherwise.
func (s *session) glamourStyle() string {
	if s.app.isTerminal() {
		return "dark"
	}
	return "notty"
}
