// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
)

// ErrSchema is matched by every *SchemaError.
var ErrSchema = errors.New("schema violation")

type (
	// Violation is one place where a document does not match its schema.
	Violation struct {
		// Path is the JSON-style location, e.g. steps[1].command.
		Path string
		// Element describes the enclosing list element when a label was
		// registered for that list, e.g. shell "build".
		Element string
		// Line is the 1-based line in the document, or 0 when unknown
		// (decoded TOML/YAML input has no CUE positions).
		Line    int
		Message string
	}

	// SchemaError lists the violations found in one document.
	SchemaError struct {
		File       string
		Violations []Violation
	}
)

func (v Violation) String() string {
	var b strings.Builder
	if v.Line > 0 {
		b.WriteString("line ")
		b.WriteString(strconv.Itoa(v.Line))
		b.WriteString(": ")
	}
	if v.Path != "" {
		b.WriteString(v.Path)
		if v.Element != "" {
			b.WriteString(" (" + v.Element + ")")
		}
		b.WriteString(": ")
	}
	b.WriteString(v.Message)
	return b.String()
}

func (e *SchemaError) Error() string {
	if len(e.Violations) == 1 {
		return e.File + ": " + e.Violations[0].String()
	}
	lines := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		lines[i] = v.String()
	}
	return fmt.Sprintf("%s: %d schema violations:\n  %s", e.File, len(lines), strings.Join(lines, "\n  "))
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// FormatError turns a CUE evaluation error into a *SchemaError for file.
// Errors that do not come from CUE are wrapped with the file name only.
func FormatError(err error, file string) error {
	return describe(err, file, cue.Value{}, nil)
}

// describe collects the CUE errors in err. When root is the user document,
// list elements with a registered label are named in each violation.
func describe(err error, file string, root cue.Value, labels map[string]ElementLabel) error {
	if err == nil {
		return nil
	}
	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return fmt.Errorf("%s: %w", file, err)
	}

	out := &SchemaError{File: file}
	seen := make(map[string]bool, len(list))
	for _, e := range list {
		format, args := e.Msg()
		v := Violation{
			Path:    formatPath(e.Path()),
			Element: elementLabel(root, e.Path(), labels),
			Message: fmt.Sprintf(format, args...),
		}
		if pos := e.Position(); pos.IsValid() && pos.Filename() == file {
			v.Line = pos.Line()
		}
		// Disjunctions report the same failure once per branch.
		if key := v.String(); !seen[key] {
			seen[key] = true
			out.Violations = append(out.Violations, v)
		}
	}
	return out
}

// elementLabel returns the label of the top-level list element that path
// points into, if its list has a registered label.
func elementLabel(root cue.Value, path []string, labels map[string]ElementLabel) string {
	if len(path) < 2 || !root.Exists() {
		return ""
	}
	label, ok := labels[path[0]]
	if !ok {
		return ""
	}
	index, err := strconv.Atoi(path[1])
	if err != nil || index < 0 {
		return ""
	}
	elem := root.LookupPath(cue.MakePath(cue.Str(path[0]), cue.Index(index)))
	if !elem.Exists() {
		return ""
	}
	return label(elem)
}

// formatPath renders CUE's flat path (["steps", "0", "command"]) in
// JSON-path notation (steps[0].command).
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize rejects documents larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, file string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", file, len(data), maxSize)
	}
	return nil
}
