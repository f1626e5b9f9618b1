// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/adriancmiranda/envspec/internal/config"
	"github.com/adriancmiranda/envspec/internal/i18n"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `envspec config` command tree.
func (s *session) newConfigCommand() *cobra.Command {
	p := s.printer
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: p.T(i18n.ShortConfig),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: p.T(i18n.ShortConfigShw),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if s.cfgPath != "" {
				fmt.Fprintln(out, SubtitleStyle.Render("// "+p.T(i18n.ConfigFile, s.cfgPath)))
			} else {
				fmt.Fprintln(out, SubtitleStyle.Render("// "+p.T(i18n.ConfigDefault)))
			}
			fmt.Fprint(out, config.GenerateCUE(s.cfg))
			return nil
		},
	})
	return cfgCmd
}
