// SPDX-License-Identifier: MPL-2.0

// Package pkgmgr detects the host package manager and builds install commands.
package pkgmgr

import (
	"errors"
	"fmt"
	"os/exec"
	goruntime "runtime"
)

const (
	Brew   Name = "brew"
	Apt    Name = "apt"
	Dnf    Name = "dnf"
	Pacman Name = "pacman"
	Apk    Name = "apk"
	Winget Name = "winget"
)

var (
	// ErrUnknownManager is returned for a manager name envspec does not support.
	ErrUnknownManager = errors.New("unknown package manager")

	managers = map[Name]*Manager{
		Brew:   {Name: Brew, Binary: "brew", format: "brew install %s"},
		Apt:    {Name: Apt, Binary: "apt-get", format: "sudo apt-get install -y %s"},
		Dnf:    {Name: Dnf, Binary: "dnf", format: "sudo dnf install -y %s"},
		Pacman: {Name: Pacman, Binary: "pacman", format: "sudo pacman -S --noconfirm --needed %s"},
		Apk:    {Name: Apk, Binary: "apk", format: "sudo apk add %s"},
		Winget: {Name: Winget, Binary: "winget", format: "winget install --silent --accept-package-agreements --accept-source-agreements --exact --id %s"},
	}

	// detection order per GOOS; unknown platforms use the linux order
	platformOrder = map[string][]Name{
		"darwin":  {Brew},
		"linux":   {Apt, Dnf, Pacman, Apk, Brew},
		"windows": {Winget},
	}
)

type (
	// Name identifies a package manager.
	Name string

	// LookPathFunc resolves an executable name, like exec.LookPath.
	LookPathFunc func(string) (string, error)

	// Manager describes a supported package manager.
	Manager struct {
		Name   Name
		Binary string

		format string
	}

	// NotAvailableError is returned when no usable package manager is found.
	NotAvailableError struct {
		Manager string
		Reason  string
	}
)

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("package manager '%s' is not available: %s", e.Manager, e.Reason)
}

// Names returns every supported manager name in a stable order.
func Names() []Name {
	return []Name{Brew, Apt, Dnf, Pacman, Apk, Winget}
}

// Get returns the manager registered under name.
func Get(name string) (*Manager, error) {
	m, ok := managers[Name(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownManager, name)
	}
	return m, nil
}

// Available reports whether the manager binary is on PATH.
func (m *Manager) Available(lookPath LookPathFunc) bool {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	_, err := lookPath(m.Binary)
	return err == nil
}

// InstallScript returns the shell command line that installs pkg.
func (m *Manager) InstallScript(pkg string) string {
	return fmt.Sprintf(m.format, pkg)
}

// Detect returns the first available manager for the current platform.
func Detect(lookPath LookPathFunc) (*Manager, error) {
	return DetectFor(goruntime.GOOS, lookPath)
}

// DetectFor is Detect for an explicit GOOS.
func DetectFor(goos string, lookPath LookPathFunc) (*Manager, error) {
	order, ok := platformOrder[goos]
	if !ok {
		order = platformOrder["linux"]
	}
	for _, name := range order {
		if m := managers[name]; m.Available(lookPath) {
			return m, nil
		}
	}
	return nil, &NotAvailableError{
		Manager: "any",
		Reason:  fmt.Sprintf("no supported package manager found on %s", goos),
	}
}

// Resolve returns the named manager when preferred is set, otherwise the
// detected one. A preferred manager that is not installed is an error.
func Resolve(preferred string, lookPath LookPathFunc) (*Manager, error) {
	if preferred == "" {
		return Detect(lookPath)
	}
	m, err := Get(preferred)
	if err != nil {
		return nil, err
	}
	if !m.Available(lookPath) {
		return nil, &NotAvailableError{
			Manager: preferred,
			Reason:  fmt.Sprintf("%s is not installed or not on PATH", m.Binary),
		}
	}
	return m, nil
}
