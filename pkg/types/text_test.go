// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestDescriptionText_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		desc    DescriptionText
		wantErr bool
	}{
		{"simple text", "My laptop", false},
		{"multiline", "Line 1\nLine 2", false},
		{"empty", "", false},
		{"spaces", "   ", true},
		{"newline only", "\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.desc.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDescriptionText) {
				t.Errorf("error should wrap ErrInvalidDescriptionText, got %v", err)
			}
		})
	}
}

func TestFilesystemPath_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    FilesystemPath
		wantErr bool
	}{
		{"relative", "conf/app.txt", false},
		{"absolute", "/etc/hosts", false},
		{"home", "~/.gitconfig", false},
		{"optional dotenv marker is just a character", ".env?", false},
		{"empty", "", true},
		{"blank", " \t", true},
		{"nul byte", "a\x00b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.path.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			var pathErr *InvalidFilesystemPathError
			if err != nil && !errors.As(err, &pathErr) {
				t.Errorf("error should be *InvalidFilesystemPathError, got %T", err)
			}
		})
	}
}
