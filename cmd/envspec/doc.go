// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the envspec command line.
//
// The root command applies a spec file; validate, plan, init and config are
// subcommands. Help headings and messages are localized, with Portuguese as
// the default, so that running envspec without arguments prints a banner
// that starts with "Uso:" and exits with status 1.
package cmd
