// SPDX-License-Identifier: MPL-2.0

// Package config handles envspec configuration using Viper with CUE as the
// file format.
//
// The config file is config.cue in the envspec configuration directory
// ($XDG_CONFIG_HOME/envspec on Linux, ~/Library/Application Support/envspec
// on macOS, %APPDATA%\envspec on Windows). It is validated against the
// embedded #Config schema. Every key can be overridden through an ENVSPEC_*
// environment variable, e.g. ENVSPEC_UI_PRESENTER=plain.
package config
