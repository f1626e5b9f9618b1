// SPDX-License-Identifier: MPL-2.0

// Package runtime provides the shells envspec uses to run commands.
//
// Two implementations are available:
//   - native: executes scripts with the host shell ($SHELL, bash or sh; PowerShell or cmd on Windows)
//   - virtual: executes scripts with an embedded shell interpreter (mvdan/sh)
//
// Both implement the Shell interface. A Request carries the script, the
// working directory and the run environment; the run environment is laid
// over the host environment and never written back to the process.
//
// The package also parses dotenv files (see ParseEnvFile).
package runtime
