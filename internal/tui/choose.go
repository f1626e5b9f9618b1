// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
)

type (
	// Option represents a selectable option with a display title and value.
	Option[T comparable] struct {
		Title string
		Value T
		// Selected pre-selects the option.
		Selected bool
	}

	// MultiChooseOptions configures the MultiChoose component.
	MultiChooseOptions[T comparable] struct {
		Title       string
		Description string
		Options     []Option[T]
		// Limit is the maximum number of selections (0 for no limit).
		Limit int
		// Height limits the number of visible options (0 for auto).
		Height int
		Config Config
	}
)

// MultiChoose prompts the user to select any number of options.
// The result keeps the order of opts.Options.
func MultiChoose[T comparable](opts MultiChooseOptions[T]) ([]T, error) {
	var result []T
	if err := runForm(newMultiChooseForm(opts, &result), opts.Config); err != nil {
		return nil, err
	}
	return orderLike(opts.Options, result), nil
}

// MultiChooseIndices prompts for a subset of titles and returns the chosen
// indices in ascending order. Every option starts selected.
func MultiChooseIndices(title string, titles []string, cfg Config) ([]int, error) {
	return MultiChoose(MultiChooseOptions[int]{
		Title:   title,
		Options: indexOptions(titles),
		Config:  cfg,
	})
}

func indexOptions(titles []string) []Option[int] {
	opts := make([]Option[int], len(titles))
	for i, t := range titles {
		opts[i] = Option[int]{Title: t, Value: i, Selected: true}
	}
	return opts
}

func newMultiChooseForm[T comparable](opts MultiChooseOptions[T], result *[]T) *huh.Form {
	huhOpts := make([]huh.Option[T], len(opts.Options))
	for i, opt := range opts.Options {
		huhOpts[i] = huh.NewOption(opt.Title, opt.Value).Selected(opt.Selected)
	}

	sel := huh.NewMultiSelect[T]().
		Title(opts.Title).
		Description(opts.Description).
		Options(huhOpts...).
		Value(result)

	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	if opts.Height > 0 {
		sel = sel.Height(opts.Height)
	}

	return huh.NewForm(huh.NewGroup(sel))
}

func orderLike[T comparable](options []Option[T], chosen []T) []T {
	out := make([]T, 0, len(chosen))
	for _, opt := range options {
		if slices.Contains(chosen, opt.Value) {
			out = append(out, opt.Value)
		}
	}
	return out
}
