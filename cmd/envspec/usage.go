// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/adriancmiranda/envspec/internal/i18n"

	"github.com/spf13/cobra"
)

// usageText renders the localized usage banner for c. The first line is
// always the translated "Usage:" heading.
func usageText(c *cobra.Command, p *i18n.Printer) string {
	var b strings.Builder
	b.WriteString(p.T(i18n.Usage))
	if c.Runnable() {
		b.WriteString("\n  " + c.UseLine())
	}
	if c.HasAvailableSubCommands() {
		b.WriteString("\n  " + c.CommandPath() + " [command]")
	}
	if len(c.Aliases) > 0 {
		b.WriteString("\n\n" + p.T(i18n.Aliases) + "\n  " + c.NameAndAliases())
	}
	if c.HasExample() {
		b.WriteString("\n\n" + p.T(i18n.Examples) + "\n" + c.Example)
	}
	if c.HasAvailableSubCommands() {
		b.WriteString("\n\n" + p.T(i18n.AvailableCmds))
		for _, sub := range c.Commands() {
			if !sub.IsAvailableCommand() {
				continue
			}
			fmt.Fprintf(&b, "\n  %-*s %s", sub.NamePadding(), sub.Name(), sub.Short)
		}
	}
	if c.HasAvailableLocalFlags() {
		b.WriteString("\n\n" + p.T(i18n.Flags) + "\n")
		b.WriteString(strings.TrimRight(c.LocalFlags().FlagUsages(), " \n"))
	}
	if c.HasAvailableInheritedFlags() {
		b.WriteString("\n\n" + p.T(i18n.GlobalFlags) + "\n")
		b.WriteString(strings.TrimRight(c.InheritedFlags().FlagUsages(), " \n"))
	}
	if c.HasAvailableSubCommands() {
		b.WriteString("\n\n" + p.T(i18n.MoreHelp, c.CommandPath()))
	}
	b.WriteString("\n")
	return b.String()
}

// newUsageError builds a UsageError carrying c's banner.
func newUsageError(c *cobra.Command, p *i18n.Printer, reason string, cause error) *UsageError {
	return &UsageError{Usage: usageText(c, p), Reason: reason, Err: cause}
}

// exactlyOneSpec requires a single spec-file argument.
func exactlyOneSpec(p *i18n.Printer) cobra.PositionalArgs {
	return func(c *cobra.Command, args []string) error {
		switch len(args) {
		case 1:
			return nil
		case 0:
			return newUsageError(c, p, p.T(i18n.MissingSpec), nil)
		default:
			return newUsageError(c, p, p.T(i18n.TooManyArgs, len(args)), nil)
		}
	}
}

// localize installs the translated usage renderer, flag error handling and
// help flag text on c and all of its subcommands.
func localize(c *cobra.Command, p *i18n.Printer) {
	c.SetUsageFunc(func(c *cobra.Command) error {
		_, err := fmt.Fprint(c.OutOrStderr(), usageText(c, p))
		return err
	})
	c.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return newUsageError(c, p, err.Error(), err)
	})
	c.InitDefaultHelpFlag()
	if f := c.Flags().Lookup("help"); f != nil {
		f.Usage = p.T(i18n.HelpFlag, c.Name())
	}
	for _, sub := range c.Commands() {
		localize(sub, p)
	}
}
