// SPDX-License-Identifier: MPL-2.0

package presenter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/adriancmiranda/envspec/internal/tui"
)

type (
	// Gum renders lines with `gum style` and prompts with `gum confirm` and
	// `gum choose`. Output falls back to plain lines if gum fails.
	Gum struct {
		*Plain
		path string
		in   io.Reader
		err  io.Writer
		exec gumExecFunc
	}

	// gumExecFunc runs gum with args and returns its exit code. A non-nil
	// error means gum could not be run at all.
	gumExecFunc func(path string, args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error)
)

// NewGum creates a gum presenter using the binary at path.
func NewGum(path string, opts Options) *Gum {
	opts = opts.withDefaults()
	g := &Gum{
		Plain: NewPlain(opts),
		path:  path,
		in:    opts.In,
		err:   opts.Err,
		exec:  execGum,
	}
	g.Plain.emit = g.styleLine
	return g
}

// Name implements Presenter.
func (g *Gum) Name() Kind { return KindGum }

// Confirm runs `gum confirm`. Exit code 0 is yes, 1 is no; anything else
// is a cancellation.
func (g *Gum) Confirm(title string) (bool, error) {
	code, err := g.exec(g.path, []string{"confirm", "--default=true", "--", title}, g.in, io.Discard, g.err)
	if err != nil {
		return false, err
	}
	switch code {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, tui.ErrCancelled
	}
}

// Choose runs `gum choose --no-limit` with every option preselected and
// maps the printed lines back to indices. Options follow "--" so a step
// named like a flag stays an option.
func (g *Gum) Choose(title string, options []string) ([]int, error) {
	args := []string{"choose", "--no-limit", "--header=" + title, "--selected=*", "--"}
	args = append(args, options...)

	var out bytes.Buffer
	code, err := g.exec(g.path, args, g.in, &out, g.err)
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, tui.ErrCancelled
	}
	return matchChoices(options, out.String()), nil
}

func (g *Gum) styleLine(kind lineKind, text string) {
	args := []string{"style", "--foreground", kind.color()}
	if kind == lineTitle || kind == lineError {
		args = append(args, "--bold")
	}
	args = append(args, "--", text)

	code, err := g.exec(g.path, args, nil, g.out, g.err)
	if err != nil || code != 0 {
		g.writeLine(kind, text)
	}
}

// matchChoices maps gum's output lines to option indices in ascending
// order. Duplicate titles consume successive indices.
func matchChoices(options []string, output string) []int {
	used := make([]bool, len(options))
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		if line == "" {
			continue
		}
		for i, opt := range options {
			if !used[i] && opt == line {
				used[i] = true
				break
			}
		}
	}
	var idx []int
	for i, u := range used {
		if u {
			idx = append(idx, i)
		}
	}
	return idx
}

func execGum(path string, args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	cmd := exec.Command(path, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("run gum %s: %w", strconv.Quote(args[0]), err)
	}
	return 0, nil
}
