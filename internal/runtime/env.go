// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// EnvToSlice converts an env map to KEY=VALUE pairs sorted by key so that
// child processes see a deterministic environment.
func EnvToSlice(env map[string]string) []string {
	keys := slices.Sorted(maps.Keys(env))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}

// HostEnv returns the process environment as a map.
func HostEnv() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}

// overlayEnv returns the host environment with overlay applied on top.
func overlayEnv(overlay map[string]string) []string {
	env := HostEnv()
	maps.Copy(env, overlay)
	return EnvToSlice(env)
}
