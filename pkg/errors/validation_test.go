package errors

import (
	"strings"
	"testing"
)

func TestValidateCategoryName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Feeding", false},
		{"with spaces", "Climate Change", false},
		{"unicode", "Großtrappe", false},
		{"leading space kept", " Europe", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 257), true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"null byte", "foo\x00bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategoryName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategoryName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateCategoryName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateFocusPath(t *testing.T) {
	tests := []struct {
		name    string
		path    []string
		wantErr bool
	}{
		{"root", nil, false},
		{"reason", []string{"Feeding"}, false},
		{"leaf", []string{"Feeding", "Stork", "Europe"}, false},

		{"too deep", []string{"a", "b", "c", "d"}, true},
		{"empty segment", []string{"Feeding", ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFocusPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFocusPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURI(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		schemes []string
		wantErr bool
	}{
		{"redis", "redis://localhost:6379/0", []string{"redis", "rediss"}, false},
		{"rediss", "rediss://cache:6380", []string{"redis", "rediss"}, false},
		{"mongo srv", "mongodb+srv://cluster.example.net", []string{"mongodb", "mongodb+srv"}, false},

		{"empty", "", []string{"redis"}, true},
		{"wrong scheme", "http://localhost", []string{"redis"}, true},
		{"no scheme", "localhost:6379", []string{"redis"}, true},
		{"control char", "redis://local\x01host", []string{"redis"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURI(tt.input, tt.schemes...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURI(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("ValidateURI(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeInvalidConfig,
		ErrCodeInvalidKey,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeNodeNotFound,
		ErrCodeNetwork,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
