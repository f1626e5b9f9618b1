// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context and markdown help pages
// rendered with glamour.
package issue
