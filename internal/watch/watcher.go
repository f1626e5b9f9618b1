// SPDX-License-Identifier: MPL-2.0

// Package watch re-runs a spec when the files it depends on change.
//
// The watcher registers the parent directory of every target file, because
// editors commonly save by writing a temp file and renaming it over the
// original, which drops a watch registered on the file itself. Events are
// filtered down to the targets plus any extra glob patterns, coalesced over a
// debounce window, and delivered to OnChange one batch at a time.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before OnChange
// fires.
const DefaultDebounce = 500 * time.Millisecond

// ErrAlreadyStarted is returned when Run is called twice on one Watcher.
var ErrAlreadyStarted = errors.New("watch: Run called more than once")

// defaultIgnores filter VCS metadata, editor swap files and OS droppings.
var defaultIgnores = []string{
	"**/.git/**",
	"**/.hg/**",
	"**/.svn/**",
	"**/*.swp",
	"**/*.swo",
	"**/*.swx",
	"**/*~",
	"**/.#*",
	"**/4913",
	"**/.DS_Store",
}

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Files are the paths whose changes trigger OnChange, typically the
		// spec file and the dotenv files it loads. Missing files are allowed;
		// their directory is watched so creation is noticed.
		Files []string

		// Patterns are extra doublestar globs, relative to BaseDir, that also
		// trigger OnChange.
		Patterns []string

		// Ignore is merged with the built-in ignore list.
		Ignore []string

		// BaseDir anchors Patterns. Empty means the current directory.
		BaseDir string

		// Debounce defaults to DefaultDebounce when zero or negative.
		Debounce time.Duration

		// OnChange receives the changed paths, sorted and deduplicated.
		// Calls never overlap: events that arrive while it runs are queued
		// for the next batch.
		OnChange func(ctx context.Context, changed []string) error

		// Logger defaults to a discarding logger.
		Logger *log.Logger
	}

	// Watcher monitors Config.Files and Config.Patterns.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		targets  map[string]struct{}
		ignores  []string
		baseDir  string
		debounce time.Duration
		logger   *log.Logger
		started  atomic.Bool
	}
)

// New validates cfg and registers the directories to watch.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Files) == 0 && len(cfg.Patterns) == 0 {
		return nil, errors.New("watch: nothing to watch")
	}
	if err := validatePatterns(cfg.Patterns, "watch"); err != nil {
		return nil, err
	}
	if err := validatePatterns(cfg.Ignore, "ignore"); err != nil {
		return nil, err
	}

	baseDir := cfg.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("watch: determine working directory: %w", err)
		}
		baseDir = wd
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve base directory: %w", err)
	}

	targets := make(map[string]struct{}, len(cfg.Files))
	dirs := make([]string, 0, len(cfg.Files)+1)
	for _, f := range cfg.Files {
		abs := f
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(absBase, f)
		}
		abs = filepath.Clean(abs)
		targets[abs] = struct{}{}
		dirs = append(dirs, filepath.Dir(abs))
	}
	if len(cfg.Patterns) > 0 {
		dirs = append(dirs, absBase)
	}
	slices.Sort(dirs)
	dirs = slices.Compact(dirs)

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		targets:  targets,
		ignores:  append(slices.Clone(defaultIgnores), cfg.Ignore...),
		baseDir:  absBase,
		debounce: debounce,
		logger:   logger,
	}

	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch: add directory %q: %w", dir, err)
		}
		logger.Debug("watching", "dir", dir)
	}
	return w, nil
}

// Run blocks until ctx is cancelled. It returns nil on cancellation and an
// error when the underlying watcher fails in a way it cannot recover from.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	defer func() {
		if err := w.fsw.Close(); err != nil {
			w.logger.Warn("close fsnotify", "err", err)
		}
	}()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: fsnotify event channel closed unexpectedly")
			}
			if evt.Has(fsnotify.Chmod) && !evt.Has(fsnotify.Write) {
				continue
			}
			if !w.Matches(evt.Name) {
				continue
			}
			w.logger.Debug("change", "path", evt.Name, "op", evt.Op.String())
			pending[evt.Name] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			clear(pending)
			slices.Sort(changed)

			if w.cfg.OnChange == nil {
				continue
			}
			// OnChange runs on this goroutine, so re-runs never overlap.
			if err := w.cfg.OnChange(ctx, changed); err != nil {
				w.logger.Error("re-run failed", "err", err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: fsnotify error channel closed unexpectedly")
			}
			if isFatalWatchError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			w.logger.Warn("fsnotify error", "err", err)
		}
	}
}

// Matches reports whether a change to path should trigger a re-run.
func (w *Watcher) Matches(path string) bool {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(w.baseDir, path)
	}
	abs = filepath.Clean(abs)

	rel, err := filepath.Rel(w.baseDir, abs)
	if err != nil {
		rel = abs
	}
	rel = filepath.ToSlash(rel)
	if matchAny(w.ignores, rel) || matchAny(w.ignores, filepath.ToSlash(abs)) {
		return false
	}
	if _, ok := w.targets[abs]; ok {
		return true
	}
	return matchAny(w.cfg.Patterns, rel)
}

func matchAny(patterns []string, name string) bool {
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, name); err == nil && ok {
			return true
		}
	}
	return false
}

func validatePatterns(patterns []string, label string) error {
	for _, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("watch: invalid %s pattern %q: %w", label, pat, doublestar.ErrBadPattern)
		}
	}
	return nil
}
