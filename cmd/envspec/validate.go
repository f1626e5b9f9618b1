// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/adriancmiranda/envspec/internal/i18n"

	"github.com/spf13/cobra"
)

// newValidateCommand creates the `envspec validate` command. It parses the
// spec and lists its steps without running anything.
func (s *session) newValidateCommand() *cobra.Command {
	p := s.printer
	return &cobra.Command{
		Use:     "validate <spec-file>",
		Short:   p.T(i18n.ShortValidate),
		Example: "  envspec validate envspec.cue",
		Args:    exactlyOneSpec(p),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := s.loadSpec(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, SuccessStyle.Render("✓")+" "+p.T(i18n.SpecValid, PathStyle.Render(args[0]), spec.Len()))
			if s.verbose() {
				for i, step := range spec.Steps() {
					fmt.Fprintf(out, "  %d. %s %s\n", i+1, step.Label(), SubtitleStyle.Render(step.Action.Describe()))
				}
			}
			return nil
		},
	}
}

// newPlanCommand creates `envspec plan`, a dry run through the presenter.
func (s *session) newPlanCommand() *cobra.Command {
	p := s.printer
	flags := &applyFlags{}
	cmd := &cobra.Command{
		Use:     "plan <spec-file>",
		Short:   p.T(i18n.ShortPlan),
		Example: "  envspec plan envspec.cue",
		Args:    exactlyOneSpec(p),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runApply(cmd, args[0], flags, true)
		},
	}
	cmd.Flags().StringVar(&flags.presenter, "presenter", "", p.T(i18n.FlagPresenter))
	cmd.Flags().StringVar(&flags.workdir, "workdir", "", p.T(i18n.FlagWorkdir))
	flags.registerWatch(cmd.Flags(), p)
	return cmd
}
