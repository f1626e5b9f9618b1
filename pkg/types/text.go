// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDescriptionText is the sentinel error wrapped by InvalidDescriptionTextError.
	ErrInvalidDescriptionText = errors.New("invalid description text")
	// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
	ErrInvalidFilesystemPath = errors.New("invalid filesystem path")
)

type (
	// DescriptionText is free text describing a spec. Empty is valid;
	// whitespace-only is not.
	DescriptionText string

	// InvalidDescriptionTextError is returned for whitespace-only text.
	InvalidDescriptionTextError struct {
		Value DescriptionText
	}

	// FilesystemPath is a path written in a spec: absolute, relative to the
	// run directory, or starting with "~". It must be non-blank and free of
	// NUL bytes.
	FilesystemPath string

	// InvalidFilesystemPathError is returned when a FilesystemPath is blank
	// or contains a NUL byte.
	InvalidFilesystemPathError struct {
		Value  FilesystemPath
		Reason string
	}
)

// Validate returns an error if d is non-empty but blank.
func (d DescriptionText) Validate() error {
	if d != "" && strings.TrimSpace(string(d)) == "" {
		return &InvalidDescriptionTextError{Value: d}
	}
	return nil
}

// String returns the string representation of the DescriptionText.
func (d DescriptionText) String() string { return string(d) }

// Error implements the error interface.
func (e *InvalidDescriptionTextError) Error() string {
	return fmt.Sprintf("invalid description %q: must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidDescriptionText for errors.Is() compatibility.
func (e *InvalidDescriptionTextError) Unwrap() error { return ErrInvalidDescriptionText }

// Validate returns an error if p cannot name a file.
func (p FilesystemPath) Validate() error {
	switch {
	case strings.TrimSpace(string(p)) == "":
		return &InvalidFilesystemPathError{Value: p, Reason: "must be non-empty"}
	case strings.ContainsRune(string(p), 0):
		return &InvalidFilesystemPathError{Value: p, Reason: "must not contain NUL bytes"}
	}
	return nil
}

// String returns the string representation of the FilesystemPath.
func (p FilesystemPath) String() string { return string(p) }

// Error implements the error interface.
func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidFilesystemPath for errors.Is() compatibility.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
