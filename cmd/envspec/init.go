// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adriancmiranda/envspec/internal/i18n"
	"github.com/adriancmiranda/envspec/internal/issue"
	"github.com/adriancmiranda/envspec/pkg/types"

	"github.com/spf13/cobra"
)

const defaultSpecFile = "envspec.cue"

// exampleSpec is written by `envspec init`. It validates against #Spec.
const exampleSpec = `// envspec: declarative development environment setup.
// Apply with: envspec envspec.cue (or envspec plan envspec.cue first)
name: "my workstation"
steps: [
	{kind: "package", package: "git", binary: "git"},
	{
		kind:    "file"
		name:    "git config"
		path:    "~/.gitconfig.envspec"
		content: "[init]\n\tdefaultBranch = main\n"
	},
	{kind: "env", var: "EDITOR", value: "vim"},
	{kind: "dotenv", path: ".env?"},
	{
		kind:     "shell"
		name:     "greeting"
		command:  "echo \"editor is $EDITOR\""
		shell:    "virtual"
		optional: true
	},
]
`

// newInitCommand creates `envspec init [path]`.
func (s *session) newInitCommand() *cobra.Command {
	p := s.printer
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: p.T(i18n.ShortInit),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultSpecFile
			if len(args) == 1 {
				path = args[0]
			}
			return s.writeExample(cmd, path, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, p.T(i18n.FlagForce))
	return cmd
}

func (s *session) writeExample(cmd *cobra.Command, path string, force bool) error {
	p := s.printer
	if _, err := os.Stat(path); err == nil && !force {
		return &ExitError{Code: types.ExitFailure, Err: errors.New(p.T(i18n.InitExists, path))}
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	if err := os.WriteFile(path, []byte(exampleSpec), 0o644); err != nil {
		return &ExitError{Code: types.ExitFailure, Err: issue.NewErrorContext().
			WithOperation("write example spec").
			WithResource(path).
			WithSuggestion("Check that the directory exists and is writable").
			WithIssue(issue.PermissionDeniedId).
			Wrap(err).
			BuildError()}
	}
	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("✓")+" "+p.T(i18n.InitWritten, PathStyle.Render(path)))
	return nil
}
