// SPDX-License-Identifier: MPL-2.0

package envspecfile

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/adriancmiranda/envspec/internal/testutil"
	"github.com/adriancmiranda/envspec/pkg/cueutil"
)

const sampleCUE = `
name: "laptop"
steps: [
	{kind: "package", package: "git", binary: "git"},
	{kind: "file", path: "hello.txt", content: "hi\n", mode: "0600"},
	{kind: "env", var: "EDITOR", value: "vim"},
	{kind: "dotenv", path: ".env?"},
	{kind: "shell", name: "greet", command: "echo $EDITOR", optional: true},
]
`

const sampleTOML = `
name = "laptop"

[[steps]]
kind = "package"
package = "git"
binary = "git"

[[steps]]
kind = "file"
path = "hello.txt"
content = "hi\n"
mode = "0600"

[[steps]]
kind = "env"
var = "EDITOR"
value = "vim"

[[steps]]
kind = "dotenv"
path = ".env?"

[[steps]]
kind = "shell"
name = "greet"
command = "echo $EDITOR"
optional = true
`

const sampleYAML = `
name: laptop
steps:
  - kind: package
    package: git
    binary: git
  - kind: file
    path: hello.txt
    content: "hi\n"
    mode: "0600"
  - kind: env
    var: EDITOR
    value: vim
  - kind: dotenv
    path: .env?
  - kind: shell
    name: greet
    command: echo $EDITOR
    optional: true
`

const sampleJSON = `{
  "name": "laptop",
  "steps": [
    {"kind": "package", "package": "git", "binary": "git"},
    {"kind": "file", "path": "hello.txt", "content": "hi\n", "mode": "0600"},
    {"kind": "env", "var": "EDITOR", "value": "vim"},
    {"kind": "dotenv", "path": ".env?"},
    {"kind": "shell", "name": "greet", "command": "echo $EDITOR", "optional": true}
  ]
}`

func expectedSampleSteps() []Step {
	return []Step{
		{Action: PackageInstall{Package: "git", Binary: "git"}},
		{Action: FileWrite{Path: "hello.txt", Content: "hi\n", Mode: "0600"}},
		{Action: EnvVarSet{Name: "EDITOR", Value: "vim"}},
		{Action: EnvFile{Path: ".env?"}},
		{Name: "greet", Optional: true, Action: ShellCommand{Command: "echo $EDITOR"}},
	}
}

func TestParseBytes_AllFormatsAgree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "cue", data: sampleCUE, format: FormatCUE},
		{name: "toml", data: sampleTOML, format: FormatTOML},
		{name: "yaml", data: sampleYAML, format: FormatYAML},
		{name: "json", data: sampleJSON, format: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec, err := ParseBytes([]byte(tt.data), "envspec."+tt.name, tt.format)
			if err != nil {
				t.Fatalf("ParseBytes() error: %v", err)
			}
			if spec.Name != "laptop" {
				t.Errorf("Name = %q, want %q", spec.Name, "laptop")
			}
			if spec.FilePath != "envspec."+tt.name {
				t.Errorf("FilePath = %q", spec.FilePath)
			}
			if got, want := spec.Steps(), expectedSampleSteps(); !reflect.DeepEqual(got, want) {
				t.Errorf("Steps() mismatch\n got: %#v\nwant: %#v", got, want)
			}
		})
	}
}

func TestParseBytes_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{
			name:    "unknown kind",
			data:    `steps: [{kind: "reboot"}]`,
			wantMsg: "kind",
		},
		{
			name:    "package without name",
			data:    `steps: [{kind: "package"}]`,
			wantMsg: "package",
		},
		{
			name:    "file without content",
			data:    `steps: [{kind: "file", path: "a.txt"}]`,
			wantMsg: "content",
		},
		{
			name:    "bad env var name",
			data:    `steps: [{kind: "env", var: "1BAD", value: "x"}]`,
			wantMsg: "var",
		},
		{
			name:    "bad mode",
			data:    `steps: [{kind: "file", path: "a", content: "", mode: "rwx"}]`,
			wantMsg: "mode",
		},
		{
			name:    "unknown field",
			data:    `steps: [{kind: "shell", command: "true", retries: 3}]`,
			wantMsg: "retries",
		},
		{
			name:    "shell field on env step",
			data:    `steps: [{kind: "env", var: "A", value: "1", command: "rm -rf x"}]`,
			wantMsg: "steps[0].command (env)",
		},
		{
			name:    "mode on dotenv step",
			data:    `steps: [{kind: "dotenv", path: ".env", mode: "0600"}]`,
			wantMsg: "mode",
		},
		{
			name:    "path on package step",
			data:    `steps: [{kind: "package", name: "tools", package: "git", path: "x"}]`,
			wantMsg: `steps[0].path (package "tools")`,
		},
		{
			name:    "unknown manager",
			data:    `steps: [{kind: "package", package: "git", manager: "choco"}]`,
			wantMsg: "manager",
		},
		{
			name:    "duplicate names",
			data:    `steps: [{kind: "shell", name: "a", command: "true"}, {kind: "shell", name: "a", command: "true"}]`,
			wantMsg: "duplicate step name",
		},
		{
			name:    "virtual shell syntax error",
			data:    `steps: [{kind: "shell", shell: "virtual", command: "if then fi ("}]`,
			wantMsg: "syntax error",
		},
		{
			name:    "cue syntax error",
			data:    `steps: [`,
			wantMsg: "envspec.cue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseBytes([]byte(tt.data), "envspec.cue", FormatCUE)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error should match ErrParse, got: %v", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error should be *ParseError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseBytes_ViolationNamesStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{
			name:   "cue",
			format: FormatCUE,
			data:   `steps: [{kind: "env", var: "A", value: "1"}, {kind: "shell", name: "build"}]`,
		},
		{
			name:   "yaml",
			format: FormatYAML,
			data:   "steps:\n  - kind: env\n    var: A\n    value: \"1\"\n  - kind: shell\n    name: build\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseBytes([]byte(tt.data), "envspec."+string(tt.format), tt.format)
			if !errors.Is(err, cueutil.ErrSchema) {
				t.Fatalf("error should match cueutil.ErrSchema, got %v", err)
			}
			if want := `steps[1].command (shell "build")`; !strings.Contains(err.Error(), want) {
				t.Errorf("error %q should contain %q", err.Error(), want)
			}
		})
	}
}

func TestParseBytes_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := ParseBytes([]byte("steps: [unclosed"), "envspec.yaml", FormatYAML)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got: %v", err)
	}
}

func TestParseBytes_EmptyStepsIsValid(t *testing.T) {
	t.Parallel()

	spec, err := ParseBytes([]byte(`steps: []`), "envspec.cue", FormatCUE)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", spec.Len())
	}
}

func TestParse_File(t *testing.T) {
	t.Parallel()

	path := testutil.MustWriteFile(t, t.TempDir(), "envspec.toml", sampleTOML)

	spec, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if spec.Len() != 5 {
		t.Errorf("Len() = %d, want 5", spec.Len())
	}
}

func TestParse_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join(t.TempDir(), "nope.cue"))
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got: %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got: %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"envspec.cue":  FormatCUE,
		"envspec":      FormatCUE,
		"envspec.JSON": FormatJSON,
		"envspec.toml": FormatTOML,
		"envspec.yaml": FormatYAML,
		"envspec.yml":  FormatYAML,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
