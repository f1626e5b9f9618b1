// SPDX-License-Identifier: MPL-2.0

package envspecfile

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adriancmiranda/envspec/pkg/cueutil"
	"github.com/adriancmiranda/envspec/pkg/types"

	"cuelang.org/go/cue"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	// FormatCUE is the native spec encoding (also used for unknown extensions).
	FormatCUE Format = "cue"
	// FormatJSON specs are compiled directly by CUE.
	FormatJSON Format = "json"
	// FormatTOML specs are decoded with go-toml before schema validation.
	FormatTOML Format = "toml"
	// FormatYAML specs are decoded with yaml.v3 before schema validation.
	FormatYAML Format = "yaml"

	schemaPath = "#Spec"
)

//go:embed envspec_schema.cue
var specSchema string

type (
	// Format is a spec file encoding.
	Format string

	rawSpec struct {
		Name        string    `json:"name,omitempty"`
		Description string    `json:"description,omitempty"`
		Steps       []rawStep `json:"steps"`
	}

	rawStep struct {
		Kind     StepKind `json:"kind"`
		Name     string   `json:"name,omitempty"`
		Optional bool     `json:"optional,omitempty"`

		Package string `json:"package,omitempty"`
		Manager string `json:"manager,omitempty"`
		Binary  string `json:"binary,omitempty"`

		Path    string `json:"path,omitempty"`
		Content string `json:"content,omitempty"`
		Mode    string `json:"mode,omitempty"`
		Append  bool   `json:"append,omitempty"`

		Var   string `json:"var,omitempty"`
		Value string `json:"value,omitempty"`

		Command string    `json:"command,omitempty"`
		Dir     string    `json:"dir,omitempty"`
		Shell   ShellMode `json:"shell,omitempty"`
	}
)

// FormatFromPath selects the encoding from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatCUE
	}
}

// Parse reads and parses a spec file. The encoding is chosen from the
// file extension.
func Parse(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return ParseBytes(data, path, FormatFromPath(path))
}

// ParseBytes parses spec content in the given format. The path is used for
// error messages and recorded on the returned Spec.
func ParseBytes(data []byte, path string, format Format) (*Spec, error) {
	raw, err := decode(data, path, format)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	spec, errs := raw.build()
	if len(errs) > 0 {
		return nil, &ParseError{Path: path, Err: errs}
	}
	spec.FilePath = path
	return spec, nil
}

func decode(data []byte, path string, format Format) (*rawSpec, error) {
	opts := []cueutil.Option{
		cueutil.WithFilename(path),
		cueutil.WithElementLabel("steps", stepLabel),
	}

	switch format {
	case FormatCUE, FormatJSON:
		return cueutil.Decode[rawSpec](specSchema, data, schemaPath, opts...)
	case FormatTOML, FormatYAML:
		if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
			return nil, err
		}
		doc := make(map[string]any)
		var err error
		if format == FormatTOML {
			err = toml.Unmarshal(data, &doc)
		} else {
			err = yaml.Unmarshal(data, &doc)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return cueutil.DecodeValue[rawSpec](specSchema, doc, schemaPath, opts...)
	default:
		return nil, fmt.Errorf("unsupported spec format %q", format)
	}
}

// stepLabel names a step in schema violations by its kind and name, as far
// as the user wrote them.
func stepLabel(step cue.Value) string {
	kind, _ := step.LookupPath(cue.ParsePath("kind")).String()
	name, _ := step.LookupPath(cue.ParsePath("name")).String()
	switch {
	case name == "":
		return kind
	case kind == "":
		return strconv.Quote(name)
	default:
		return kind + " " + strconv.Quote(name)
	}
}

// build converts the schema-validated raw form into a Spec and runs the
// checks CUE cannot express.
func (r *rawSpec) build() (*Spec, ValidationErrors) {
	steps := make([]Step, 0, len(r.Steps))
	for _, rs := range r.Steps {
		steps = append(steps, rs.toStep())
	}

	spec := &Spec{
		Name:        r.Name,
		Description: r.Description,
		steps:       steps,
	}
	return spec, Validate(spec)
}

func (r rawStep) toStep() Step {
	step := Step{Name: r.Name, Optional: r.Optional}

	switch r.Kind {
	case KindPackage:
		step.Action = PackageInstall{Package: r.Package, Manager: r.Manager, Binary: r.Binary}
	case KindFile:
		step.Action = FileWrite{Path: r.Path, Content: r.Content, Mode: types.FileMode(r.Mode), Append: r.Append}
	case KindEnv:
		step.Action = EnvVarSet{Name: r.Var, Value: r.Value}
	case KindShell:
		step.Action = ShellCommand{Command: r.Command, Dir: r.Dir, Shell: r.Shell}
	case KindDotenv:
		step.Action = EnvFile{Path: r.Path}
	}

	return step
}
