// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/adriancmiranda/envspec/internal/runtime"
)

// State is the run context threaded through executors.
// Env holds only the variables set by the run; it is laid over the host
// environment when commands are executed.
type State struct {
	WorkDir string
	Env     map[string]string
}

// NewState returns a State rooted at workDir with a copy of env.
func NewState(workDir string, env map[string]string) State {
	return State{WorkDir: workDir, Env: maps.Clone(nonNil(env))}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{WorkDir: s.WorkDir, Env: maps.Clone(nonNil(s.Env))}
}

// WithEnv returns a copy of s with key set to value.
func (s State) WithEnv(key, value string) State {
	next := s.Clone()
	next.Env[key] = value
	return next
}

// Lookup returns the value of key from the run environment, falling back to
// the host environment.
func (s State) Lookup(key string) (string, bool) {
	if v, ok := s.Env[key]; ok {
		return v, true
	}
	return os.LookupEnv(key)
}

// Getenv is Lookup without the presence flag.
func (s State) Getenv(key string) string {
	v, _ := s.Lookup(key)
	return v
}

// Resolve turns path into an absolute path: a leading "~" expands to the
// home directory and relative paths are joined to WorkDir.
func (s State) Resolve(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := s.home()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, filepath.FromSlash(path[1:])), nil
	}
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join(s.WorkDir, path), nil
}

// Exports renders the run environment as sorted shell export lines.
func (s State) Exports() []string {
	pairs := runtime.EnvToSlice(s.Env)
	for i, kv := range pairs {
		k, v, _ := strings.Cut(kv, "=")
		pairs[i] = "export " + k + "=" + shellQuote(v)
	}
	return pairs
}

func (s State) home() (string, error) {
	if h, ok := s.Env["HOME"]; ok && h != "" {
		return h, nil
	}
	return os.UserHomeDir()
}

func shellQuote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", `'\''`) + "'"
}

func nonNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
