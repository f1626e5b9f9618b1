// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestParseEnvFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected map[string]string
	}{
		{"simple key value", "FOO=bar", map[string]string{"FOO": "bar"}},
		{"multiple key values", "FOO=bar\nBAZ=qux", map[string]string{"FOO": "bar", "BAZ": "qux"}},
		{"empty value", "EMPTY=", map[string]string{"EMPTY": ""}},
		{"value with equals sign", "URL=https://example.com?foo=bar", map[string]string{"URL": "https://example.com?foo=bar"}},
		{"comment line", "# comment\nFOO=bar", map[string]string{"FOO": "bar"}},
		{"inline comment unquoted", "FOO=bar # note", map[string]string{"FOO": "bar"}},
		{"hash without space kept", "COLOR=#fff", map[string]string{"COLOR": "#fff"}},
		{"export prefix", "export FOO=bar", map[string]string{"FOO": "bar"}},
		{"double quoted escapes", `MSG="a\tb\n\"c\""`, map[string]string{"MSG": "a\tb\n\"c\""}},
		{"double quoted keeps hash", `X="a # b"`, map[string]string{"X": "a # b"}},
		{"single quoted literal", `RAW='a\nb $HOME'`, map[string]string{"RAW": `a\nb $HOME`}},
		{"crlf line endings", "A=1\r\nB=2\r\n", map[string]string{"A": "1", "B": "2"}},
		{"blank lines", "\n\nA=1\n\n", map[string]string{"A": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, err := ParseEnvFile([]byte(tt.content), "test.env")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(env) != len(tt.expected) {
				t.Errorf("got %d vars, want %d: %v", len(env), len(tt.expected), env)
			}
			for k, v := range tt.expected {
				if env[k] != v {
					t.Errorf("expected %s=%q, got %s=%q", k, v, k, env[k])
				}
			}
		})
	}
}

func TestParseEnvFile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"missing equals", "FOO"},
		{"empty key", "=bar"},
		{"unterminated double quote", `FOO="bar`},
		{"unterminated single quote", `FOO='bar`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ParseEnvFile([]byte(tt.content), "test.env"); err == nil {
				t.Errorf("ParseEnvFile(%q) expected error", tt.content)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("FOO=from-file\nNEW=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	env := map[string]string{"FOO": "original", "KEEP": "yes"}
	if err := LoadEnvFile(env, ".env", dir); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}

	want := map[string]string{"FOO": "from-file", "NEW": "1", "KEEP": "yes"}
	for k, v := range want {
		if env[k] != v {
			t.Errorf("env[%s] = %q, want %q", k, env[k], v)
		}
	}
}

func TestLoadEnvFile_Optional(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env := map[string]string{}

	if err := LoadEnvFile(env, "missing.env?", dir); err != nil {
		t.Errorf("optional missing file: unexpected error %v", err)
	}
	if len(env) != 0 {
		t.Errorf("env should be untouched, got %v", env)
	}

	err := LoadEnvFile(env, "missing.env", dir)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("required missing file: error = %v, want fs.ErrNotExist", err)
	}
}
