// SPDX-License-Identifier: MPL-2.0

package pkgmgr

import (
	"errors"
	"testing"
)

func lookPathFor(available ...string) LookPathFunc {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestDetectFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		goos      string
		available []string
		want      Name
		wantErr   bool
	}{
		{name: "debian", goos: "linux", available: []string{"apt-get", "brew"}, want: Apt},
		{name: "fedora", goos: "linux", available: []string{"dnf"}, want: Dnf},
		{name: "arch", goos: "linux", available: []string{"pacman"}, want: Pacman},
		{name: "alpine", goos: "linux", available: []string{"apk"}, want: Apk},
		{name: "linuxbrew", goos: "linux", available: []string{"brew"}, want: Brew},
		{name: "macos", goos: "darwin", available: []string{"brew", "apt-get"}, want: Brew},
		{name: "windows", goos: "windows", available: []string{"winget"}, want: Winget},
		{name: "freebsd uses linux order", goos: "freebsd", available: []string{"pacman"}, want: Pacman},
		{name: "none", goos: "linux", wantErr: true},
		{name: "macos without brew", goos: "darwin", available: []string{"apt-get"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := DetectFor(tt.goos, lookPathFor(tt.available...))
			if tt.wantErr {
				var notAvail *NotAvailableError
				if !errors.As(err, &notAvail) {
					t.Errorf("DetectFor() error = %v, want *NotAvailableError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectFor() unexpected error: %v", err)
			}
			if m.Name != tt.want {
				t.Errorf("DetectFor() = %s, want %s", m.Name, tt.want)
			}
		})
	}
}

func TestInstallScript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		manager Name
		want    string
	}{
		{Brew, "brew install git"},
		{Apt, "sudo apt-get install -y git"},
		{Dnf, "sudo dnf install -y git"},
		{Pacman, "sudo pacman -S --noconfirm --needed git"},
		{Apk, "sudo apk add git"},
		{Winget, "winget install --silent --accept-package-agreements --accept-source-agreements --exact --id git"},
	}

	for _, tt := range tests {
		t.Run(string(tt.manager), func(t *testing.T) {
			t.Parallel()

			m, err := Get(string(tt.manager))
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got := m.InstallScript("git"); got != tt.want {
				t.Errorf("InstallScript() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	if _, err := Get("choco"); !errors.Is(err, ErrUnknownManager) {
		t.Errorf("Get(choco) error = %v, want ErrUnknownManager", err)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	m, err := Resolve("dnf", lookPathFor("dnf", "apt-get"))
	if err != nil || m.Name != Dnf {
		t.Errorf("Resolve(dnf) = %v, %v; want dnf", m, err)
	}

	_, err = Resolve("dnf", lookPathFor("apt-get"))
	var notAvail *NotAvailableError
	if !errors.As(err, &notAvail) {
		t.Errorf("Resolve(dnf) without dnf: error = %v, want *NotAvailableError", err)
	}

	if _, err := Resolve("choco", lookPathFor()); !errors.Is(err, ErrUnknownManager) {
		t.Errorf("Resolve(choco) error = %v, want ErrUnknownManager", err)
	}
}

func TestNames_AllRegistered(t *testing.T) {
	t.Parallel()

	for _, n := range Names() {
		if _, err := Get(string(n)); err != nil {
			t.Errorf("Names() contains %s but Get failed: %v", n, err)
		}
	}
}
