// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ShellNative runs shell steps with the host shell.
	// Defined locally to avoid coupling config to the runtime package.
	ShellNative ShellName = "native"
	// ShellVirtual runs shell steps with the embedded interpreter.
	ShellVirtual ShellName = "virtual"
)

var (
	// ErrInvalidShellName is returned when a ShellName value is not recognized.
	ErrInvalidShellName = errors.New("invalid shell name")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ShellName selects the default shell for shell steps.
	ShellName string

	// InvalidShellNameError is returned when a ShellName value is not recognized.
	InvalidShellNameError struct {
		Value ShellName
	}

	// InvalidConfigError collects field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		UI     UIConfig     `json:"ui" mapstructure:"ui"`
		Runner RunnerConfig `json:"runner" mapstructure:"runner"`
	}

	// UIConfig configures output and prompts.
	UIConfig struct {
		// Presenter is auto, plain, gum or tui.
		Presenter string `json:"presenter" mapstructure:"presenter"`
		// Verbose enables debug logging and error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Locale overrides locale detection.
		Locale string `json:"locale" mapstructure:"locale"`
		// Theme is the huh theme used by the tui presenter.
		Theme string `json:"theme" mapstructure:"theme"`
	}

	// RunnerConfig configures step execution.
	RunnerConfig struct {
		ContinueOnError bool      `json:"continue_on_error" mapstructure:"continue_on_error"`
		Shell           ShellName `json:"shell" mapstructure:"shell"`
		// PackageManager forces a package manager; empty means auto-detect.
		PackageManager string `json:"package_manager" mapstructure:"package_manager"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Presenter: "auto",
			Theme:     "default",
		},
		Runner: RunnerConfig{
			Shell: ShellNative,
		},
	}
}

// Error implements the error interface.
func (e *InvalidShellNameError) Error() string {
	return fmt.Sprintf("invalid shell %q (valid: native, virtual)", e.Value)
}

// Unwrap returns ErrInvalidShellName for errors.Is() compatibility.
func (e *InvalidShellNameError) Unwrap() error { return ErrInvalidShellName }

// Validate returns an error if the ShellName is not recognized.
func (s ShellName) Validate() error {
	switch s {
	case ShellNative, ShellVirtual:
		return nil
	default:
		return &InvalidShellNameError{Value: s}
	}
}

// String returns the string representation of the ShellName.
func (s ShellName) String() string { return string(s) }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so both
// match with errors.Is.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Validate checks values that can arrive without schema validation, i.e.
// through ENVSPEC_* environment overrides.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Runner.Shell.Validate(); err != nil {
		errs = append(errs, err)
	}
	switch c.UI.Presenter {
	case "auto", "plain", "gum", "tui":
	default:
		errs = append(errs, fmt.Errorf("invalid presenter %q (valid: auto, plain, gum, tui)", c.UI.Presenter))
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}
