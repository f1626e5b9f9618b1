// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// DefaultFileMode is used by file steps that do not declare a mode.
const DefaultFileMode FileMode = "0644"

// ErrInvalidFileMode is the sentinel error wrapped by InvalidFileModeError.
var ErrInvalidFileMode = errors.New("invalid file mode")

type (
	// FileMode is an octal permission string such as "0644" or "755".
	// The zero value ("") means DefaultFileMode.
	FileMode string

	// InvalidFileModeError is returned when a FileMode is not a valid octal
	// permission in the range 0-0777.
	InvalidFileModeError struct {
		Value FileMode
	}
)

// Error implements the error interface.
func (e *InvalidFileModeError) Error() string {
	return fmt.Sprintf("invalid file mode %q (expected octal permission like \"0644\")", e.Value)
}

// Unwrap returns ErrInvalidFileMode for errors.Is() compatibility.
func (e *InvalidFileModeError) Unwrap() error { return ErrInvalidFileMode }

// Validate returns an error if the FileMode cannot be parsed.
func (m FileMode) Validate() error {
	_, err := m.Perm()
	return err
}

// Perm parses the FileMode into permission bits.
func (m FileMode) Perm() (fs.FileMode, error) {
	s := strings.TrimSpace(string(m))
	if s == "" {
		s = string(DefaultFileMode)
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0o"), 8, 32)
	if err != nil || v > 0o777 {
		return 0, &InvalidFileModeError{Value: m}
	}
	return fs.FileMode(v), nil
}

// String returns the string representation of the FileMode.
func (m FileMode) String() string { return string(m) }
