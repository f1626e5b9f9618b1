// SPDX-License-Identifier: MPL-2.0

package cueutil

import "cuelang.org/go/cue"

// DefaultMaxFileSize bounds the size of a document (5 MiB).
const DefaultMaxFileSize int64 = 5 << 20

type (
	// ElementLabel names one element of a top-level list for violation
	// messages, for example `shell "build"` for a step. It receives the
	// element as written by the user and returns "" when there is nothing
	// useful to say.
	ElementLabel func(elem cue.Value) string

	// Option configures Decode and DecodeValue.
	Option func(*options)

	options struct {
		filename    string
		maxFileSize int64
		labels      map[string]ElementLabel
	}
)

// WithFilename sets the name used in violation messages and CUE positions.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(size int64) Option {
	return func(o *options) { o.maxFileSize = size }
}

// WithElementLabel registers label for the elements of the top-level list
// field named list.
func WithElementLabel(list string, label ElementLabel) Option {
	return func(o *options) {
		if o.labels == nil {
			o.labels = make(map[string]ElementLabel)
		}
		o.labels[list] = label
	}
}

func applyOptions(opts []Option) options {
	o := options{filename: "<input>", maxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
