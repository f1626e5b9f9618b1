// SPDX-License-Identifier: MPL-2.0

package presenter

import (
	"fmt"

	"github.com/adriancmiranda/envspec/internal/i18n"
	"github.com/adriancmiranda/envspec/internal/tui"
)

// TUI prints progress like Plain and prompts with huh forms.
type TUI struct {
	*Plain
	cfg tui.Config
	p   *i18n.Printer
}

// NewTUI creates a tui presenter.
func NewTUI(opts Options) *TUI {
	opts = opts.withDefaults()
	cfg := tui.DefaultConfig()
	cfg.Theme = opts.Theme
	cfg.Input = opts.In
	return &TUI{Plain: NewPlain(opts), cfg: cfg, p: opts.Printer}
}

// Name implements Presenter.
func (t *TUI) Name() Kind { return KindTUI }

// Confirm implements Presenter.
func (t *TUI) Confirm(title string) (bool, error) {
	return tui.Confirm(tui.ConfirmOptions{
		Title:       title,
		Affirmative: t.p.T(i18n.AnswerYes),
		Negative:    t.p.T(i18n.AnswerNo),
		Default:     true,
		Config:      t.cfg,
	})
}

// Choose implements Presenter.
func (t *TUI) Choose(title string, options []string) ([]int, error) {
	idx, err := tui.MultiChooseIndices(title, options, t.cfg)
	if err != nil {
		return nil, fmt.Errorf("choose steps: %w", err)
	}
	return idx, nil
}
