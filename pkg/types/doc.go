// SPDX-License-Identifier: MPL-2.0

// Package types holds the small validated value types shared by the spec
// model, the runner and the CLI: exit codes, file modes, paths and
// description text. It imports only the standard library.
package types
