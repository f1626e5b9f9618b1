// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/adriancmiranda/envspec/internal/config"
	"github.com/adriancmiranda/envspec/internal/i18n"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

type (
	// App wires CLI services and shared dependencies. Every command handler
	// receives the App and reads its writers and providers from it.
	App struct {
		Config     config.Provider
		stdin      io.Reader
		stdout     io.Writer
		stderr     io.Writer
		lookPath   func(string) (string, error)
		isTerminal func() bool
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config     config.Provider
		Stdin      io.Reader
		Stdout     io.Writer
		Stderr     io.Writer
		LookPath   func(string) (string, error)
		IsTerminal func() bool
	}

	// session holds what one invocation resolved before building the
	// command tree: configuration, locale and the global flags.
	session struct {
		app     *App
		cfg     *config.Config
		cfgPath string
		printer *i18n.Printer
		global  globalFlags
	}

	globalFlags struct {
		configPath string
		verbose    bool
		locale     string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.LookPath == nil {
		deps.LookPath = exec.LookPath
	}
	if deps.IsTerminal == nil {
		deps.IsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	}
	return &App{
		Config:     deps.Config,
		stdin:      deps.Stdin,
		stdout:     deps.Stdout,
		stderr:     deps.Stderr,
		lookPath:   deps.LookPath,
		isTerminal: deps.IsTerminal,
	}
}

// newSession loads configuration and picks the message locale. A broken
// config file is reported as a warning and defaults are used instead.
func (a *App) newSession(ctx context.Context, pre globalFlags) *session {
	s := &session{app: a, global: pre}

	cfg, path, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: pre.configPath})
	if err != nil {
		cfg = config.DefaultConfig()
		s.printer = i18n.NewPrinter(i18n.Detect(pre.locale))
		s.warn(err)
	}
	s.cfg, s.cfgPath = cfg, path

	locale := pre.locale
	if locale == "" {
		locale = cfg.UI.Locale
	}
	s.printer = i18n.NewPrinter(i18n.Detect(locale))
	return s
}

// verbose reports whether --verbose or ui.verbose is set.
func (s *session) verbose() bool {
	return s.global.verbose || s.cfg.UI.Verbose
}

// logger returns a component logger writing to stderr.
func (s *session) logger(prefix string) *log.Logger {
	level := log.WarnLevel
	if s.verbose() {
		level = log.DebugLevel
	}
	return log.NewWithOptions(s.app.stderr, log.Options{
		Prefix: prefix,
		Level:  level,
	})
}

func (s *session) warn(err error) {
	fmt.Fprintln(s.app.stderr, WarningStyle.Render("!")+" "+formatErrorForDisplay(err, s.global.verbose))
}
