// SPDX-License-Identifier: MPL-2.0

// Package envspecfile provides types and parsing for envspec files.
//
// An envspec file declares an ordered list of environment setup steps:
// package installs, file writes, environment variables, dotenv files and
// shell commands. Files are validated against an embedded CUE schema
// (envspec_schema.cue) regardless of their encoding; CUE, JSON, TOML and
// YAML are accepted and selected by file extension.
//
// Parsing never returns a partially valid Spec: any schema or semantic
// violation is reported as a *ParseError.
package envspecfile
