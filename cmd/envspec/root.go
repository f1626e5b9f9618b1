// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/adriancmiranda/envspec/internal/i18n"
	"github.com/adriancmiranda/envspec/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// Execute runs the CLI with the process arguments and exits.
// This is called by main.main().
func Execute() {
	code := Run(context.Background(), os.Args[1:], Dependencies{})
	os.Exit(int(code))
}

// Run executes the CLI with args and returns the exit code.
func Run(ctx context.Context, args []string, deps Dependencies) types.ExitCode {
	app := NewApp(deps)
	s := app.newSession(ctx, preScan(args))

	root := s.newRootCommand()
	root.SetArgs(args)
	root.SetIn(app.stdin)
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	err := fang.Execute(
		ctx,
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(s.errorHandler()),
	)
	return exitCodeFor(err)
}

// newRootCommand builds the command tree with messages in the session's
// locale.
func (s *session) newRootCommand() *cobra.Command {
	p := s.printer
	flags := &applyFlags{}

	root := &cobra.Command{
		Use:   "envspec <spec-file>",
		Short: p.T(i18n.ShortRoot),
		Long: TitleStyle.Render("envspec") + SubtitleStyle.Render(" - "+p.T(i18n.ShortRoot)) + `

  envspec envspec.cue            apply every step
  envspec -n envspec.cue         dry run
  envspec --select envspec.cue   choose steps interactively
  envspec validate envspec.toml
  envspec init`,
		Args: exactlyOneSpec(p),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runApply(cmd, args[0], flags, flags.dryRun)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.global.configPath, "config", s.global.configPath, p.T(i18n.FlagConfig))
	pf.BoolVarP(&s.global.verbose, "verbose", "v", s.global.verbose, p.T(i18n.FlagVerbose))
	pf.StringVar(&s.global.locale, "locale", s.global.locale, p.T(i18n.FlagLocale))

	flags.register(root.Flags(), p)

	root.AddCommand(s.newValidateCommand())
	root.AddCommand(s.newPlanCommand())
	root.AddCommand(s.newInitCommand())
	root.AddCommand(s.newConfigCommand())

	localize(root, p)
	return root
}

// preScan extracts the flags that must be known before the command tree is
// built: the config file and the locale decide which messages cobra shows.
func preScan(args []string) globalFlags {
	var g globalFlags
	fs := pflag.NewFlagSet("prescan", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.StringVar(&g.configPath, "config", "", "")
	fs.StringVar(&g.locale, "locale", "", "")
	fs.BoolVarP(&g.verbose, "verbose", "v", false, "")
	fs.BoolP("help", "h", false, "")
	_ = fs.Parse(args)
	return g
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}
