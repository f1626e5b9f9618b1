// SPDX-License-Identifier: MPL-2.0

// Package testutil holds small helpers shared by envspec tests: writing
// fixture files, pointing HOME at a temp dir and a deterministic clock for
// step timings.
package testutil
