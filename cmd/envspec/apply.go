// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adriancmiranda/envspec/internal/i18n"
	"github.com/adriancmiranda/envspec/internal/issue"
	"github.com/adriancmiranda/envspec/internal/presenter"
	"github.com/adriancmiranda/envspec/internal/runner"
	"github.com/adriancmiranda/envspec/internal/tui"
	"github.com/adriancmiranda/envspec/internal/watch"
	"github.com/adriancmiranda/envspec/pkg/envspecfile"
	"github.com/adriancmiranda/envspec/pkg/types"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// applyFlags are the flags of the root (apply) command.
type applyFlags struct {
	dryRun          bool
	continueOnError bool
	selectSteps     bool
	yes             bool
	watch           bool
	presenter       string
	workdir         string
	export          string
	watchGlobs      []string
	watchIgnores    []string
}

func (f *applyFlags) register(fs *pflag.FlagSet, p *i18n.Printer) {
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, p.T(i18n.FlagDryRun))
	fs.BoolVarP(&f.continueOnError, "continue-on-error", "k", false, p.T(i18n.FlagContinue))
	fs.BoolVar(&f.selectSteps, "select", false, p.T(i18n.FlagSelect))
	fs.BoolVarP(&f.yes, "yes", "y", false, p.T(i18n.FlagYes))
	fs.StringVar(&f.presenter, "presenter", "", p.T(i18n.FlagPresenter))
	fs.StringVar(&f.workdir, "workdir", "", p.T(i18n.FlagWorkdir))
	fs.StringVar(&f.export, "export", "", p.T(i18n.FlagExport))
	f.registerWatch(fs, p)
}

func (f *applyFlags) registerWatch(fs *pflag.FlagSet, p *i18n.Printer) {
	fs.BoolVarP(&f.watch, "watch", "w", false, p.T(i18n.FlagWatch))
	fs.StringSliceVar(&f.watchGlobs, "watch-glob", nil, p.T(i18n.FlagWatchGlob))
	fs.StringSliceVar(&f.watchIgnores, "watch-ignore", nil, p.T(i18n.FlagWatchSkip))
}

// runApply loads the spec and applies it once, or keeps re-applying it in
// watch mode.
func (s *session) runApply(cmd *cobra.Command, path string, f *applyFlags, dryRun bool) error {
	spec, err := s.loadSpec(path)
	if err != nil {
		return err
	}
	pres, err := s.newPresenter(cmd, f.presenter)
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}
	workDir, err := s.workDir(path, f.workdir)
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	err = s.applyOnce(cmd, spec, pres, workDir, f, dryRun, true)
	if !f.watch {
		return err
	}
	return s.watchSpec(cmd, path, spec, pres, workDir, f, dryRun)
}

// applyOnce runs spec through the runner. Prompts are only shown when
// interactive is set; watch re-runs skip them.
func (s *session) applyOnce(cmd *cobra.Command, spec *envspecfile.Spec, pres presenter.Presenter, workDir string, f *applyFlags, dryRun, interactive bool) error {
	p := s.printer
	opts := runner.Options{
		DryRun:          dryRun,
		ContinueOnError: f.continueOnError || s.cfg.Runner.ContinueOnError,
		State:           runner.NewState(workDir, nil),
		Registry: runner.NewDefaultRegistry(runner.ExecutorOptions{
			Stdin:          s.app.stdin,
			Stdout:         cmd.OutOrStdout(),
			Stderr:         cmd.ErrOrStderr(),
			DefaultShell:   string(s.cfg.Runner.Shell),
			PackageManager: s.cfg.Runner.PackageManager,
			LookPath:       s.app.lookPath,
		}),
		Observer: pres,
		Logger:   s.logger("runner"),
	}

	if interactive && !dryRun {
		if f.selectSteps {
			labels := make([]string, 0, spec.Len())
			for _, step := range spec.Steps() {
				labels = append(labels, step.Label())
			}
			only, err := pres.Choose(p.T(i18n.ChooseSteps), labels)
			if err != nil {
				return s.promptError(cmd, err)
			}
			if only == nil {
				only = []int{}
			}
			opts.Only = only
		}
		if !f.yes {
			count := spec.Len()
			if opts.Only != nil {
				count = len(opts.Only)
			}
			ok, err := pres.Confirm(p.T(i18n.ConfirmApply, count, spec.Title()))
			if err != nil {
				return s.promptError(cmd, err)
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render(p.T(i18n.Aborted)))
				return &ExitError{Code: types.ExitFailure}
			}
		}
	}

	pres.Begin(spec, dryRun)
	report := runner.Run(cmd.Context(), spec, opts)
	pres.Finish(report)

	if f.export != "" && !dryRun {
		if err := writeExports(f.export, report.State); err != nil {
			return &ExitError{Code: types.ExitFailure, Err: err}
		}
		fmt.Fprintln(cmd.ErrOrStderr(), SubtitleStyle.Render(p.T(i18n.ExportWritten, f.export)))
	}
	return reportError(report)
}

// reportError converts a finished report into the command's error. The
// presenter already showed the failures, so the ExitError carries no message.
func reportError(report *runner.Report) error {
	if report.Interrupted != nil {
		return &ExitError{Code: types.ExitInterrupted}
	}
	err := report.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return &ExitError{Code: types.ExitInterrupted}
	default:
		return &ExitError{Code: types.ExitFailure}
	}
}

func (s *session) promptError(cmd *cobra.Command, err error) error {
	if errors.Is(err, tui.ErrCancelled) {
		fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render(s.printer.T(i18n.Aborted)))
		return &ExitError{Code: types.ExitInterrupted}
	}
	return &ExitError{Code: types.ExitFailure, Err: err}
}

// loadSpec parses path. A missing file is a usage problem (exit 1); a file
// that exists but does not parse is a parse error (exit 2).
func (s *session) loadSpec(path string) (*envspecfile.Spec, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, &ExitError{Code: types.ExitFailure, Err: issue.NewErrorContext().
			WithOperation("read spec").
			WithResource(path).
			WithSuggestions(
				"Check the path and the file extension (.cue, .toml, .yaml, .yml or .json)",
				"Run 'envspec init' to create an example spec",
			).
			WithIssue(issue.SpecNotFoundId).
			Wrap(err).
			BuildError()}
	}

	spec, err := envspecfile.Parse(path)
	if err != nil {
		return nil, &ExitError{Code: types.ExitParseError, Err: issue.NewErrorContext().
			WithOperation("parse spec").
			WithResource(path).
			WithSuggestion("Run 'envspec validate " + path + "' after fixing the reported fields").
			WithIssue(issue.SpecParseErrorId).
			Wrap(err).
			BuildError()}
	}
	return spec, nil
}

func (s *session) newPresenter(cmd *cobra.Command, flag string) (presenter.Presenter, error) {
	kind := presenter.Kind(flag)
	if kind == "" {
		kind = presenter.Kind(s.cfg.UI.Presenter)
	}
	return presenter.New(kind, presenter.Options{
		Out:        cmd.OutOrStdout(),
		Err:        cmd.ErrOrStderr(),
		In:         s.app.stdin,
		Printer:    s.printer,
		Theme:      tui.Theme(s.cfg.UI.Theme),
		Verbose:    s.verbose(),
		LookPath:   s.app.lookPath,
		IsTerminal: s.app.isTerminal,
	})
}

// workDir is --workdir when given, otherwise the spec file's directory, so
// relative paths in a spec resolve next to it.
func (s *session) workDir(specPath, flag string) (string, error) {
	dir := flag
	if dir == "" {
		dir = filepath.Dir(specPath)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("working directory %s is not a directory", abs)
	}
	return abs, nil
}

func writeExports(path string, state runner.State) error {
	lines := state.Exports()
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write exports: %w", err)
	}
	return nil
}

// watchSpec re-parses and re-applies the spec whenever it, one of its
// dotenv files or a --watch-glob match changes, until the command context
// is cancelled.
func (s *session) watchSpec(cmd *cobra.Command, path string, spec *envspecfile.Spec, pres presenter.Presenter, workDir string, f *applyFlags, dryRun bool) error {
	p := s.printer
	logger := s.logger("watch")

	// Directories that do not exist yet cannot be watched.
	files := slices.DeleteFunc(watchedFiles(path, spec, workDir), func(f string) bool {
		_, err := os.Stat(filepath.Dir(f))
		return err != nil
	})
	w, err := watch.New(watch.Config{
		Files:    files,
		Patterns: f.watchGlobs,
		Ignore:   f.watchIgnores,
		BaseDir:  workDir,
		Logger:   logger,
		OnChange: func(ctx context.Context, changed []string) error {
			fmt.Fprintln(cmd.ErrOrStderr(), SubtitleStyle.Render(p.T(i18n.WatchRerun)))
			logger.Debug("re-applying", "changed", changed)
			next, err := s.loadSpec(path)
			if err != nil {
				renderError(cmd.ErrOrStderr(), p, err, s.verbose(), s.glamourStyle())
				return nil
			}
			_ = s.applyOnce(cmd, next, pres, workDir, f, dryRun, false)
			return nil
		},
	})
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	fmt.Fprintln(cmd.ErrOrStderr(), SubtitleStyle.Render(p.T(i18n.WatchStarted)))
	if err := w.Run(cmd.Context()); err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}
	return &ExitError{Code: types.ExitInterrupted}
}

// watchedFiles lists the spec file and every dotenv file it loads.
func watchedFiles(specPath string, spec *envspecfile.Spec, workDir string) []string {
	abs, err := filepath.Abs(specPath)
	if err != nil {
		abs = specPath
	}
	files := []string{abs}
	state := runner.NewState(workDir, nil)
	for _, step := range spec.Steps() {
		env, ok := step.Action.(envspecfile.EnvFile)
		if !ok {
			continue
		}
		if resolved, err := state.Resolve(strings.TrimSuffix(env.Path, "?")); err == nil {
			files = append(files, resolved)
		}
	}
	return files
}
