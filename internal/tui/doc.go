// SPDX-License-Identifier: MPL-2.0

// Package tui wraps charmbracelet/huh forms for the prompts envspec shows
// in interactive mode: a yes/no confirmation and a multi-select list.
package tui
