// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// Every document envspec reads (spec files in any supported encoding and the
// user config) goes through the same flow:
//
//  1. Compile the embedded schema
//  2. Compile (or encode) user data and unify with schema
//  3. Validate and decode to Go struct
//
// # Usage
//
//	//go:embed envspec_schema.cue
//	var schema string
//
//	raw, err := cueutil.Decode[rawSpec](schema, data, "#Spec",
//	    cueutil.WithFilename("envspec.cue"),
//	    cueutil.WithElementLabel("steps", stepLabel),
//	)
//
// A failure is a *SchemaError whose violations carry the JSON path, the
// labelled list element and, when CUE knows it, the line in the document:
//
//	envspec.cue: steps[1].command (shell "build"): incomplete value string
//
// TOML and YAML documents are decoded into plain Go values by
// the caller and handed to DecodeValue, which validates them against the
// same schema.
package cueutil
