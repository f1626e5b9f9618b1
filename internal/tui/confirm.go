// SPDX-License-Identifier: MPL-2.0

package tui

import "github.com/charmbracelet/huh"

// ConfirmOptions configures the Confirm component.
type ConfirmOptions struct {
	// Title is the question to display.
	Title string
	// Description provides additional context below the title.
	Description string
	// Affirmative is the text for the affirmative option (default: "Yes").
	Affirmative string
	// Negative is the text for the negative option (default: "No").
	Negative string
	// Default is the preselected answer.
	Default bool
	Config  Config
}

// Confirm prompts the user for a yes/no answer.
func Confirm(opts ConfirmOptions) (bool, error) {
	result := opts.Default
	if err := runForm(newConfirmForm(opts, &result), opts.Config); err != nil {
		return false, err
	}
	return result, nil
}

func newConfirmForm(opts ConfirmOptions, result *bool) *huh.Form {
	affirmative, negative := opts.Affirmative, opts.Negative
	if affirmative == "" {
		affirmative = "Yes"
	}
	if negative == "" {
		negative = "No"
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(opts.Title).
			Description(opts.Description).
			Affirmative(affirmative).
			Negative(negative).
			Value(result),
	))
}
