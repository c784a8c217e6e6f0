package errors

import (
	"strings"
	"unicode"
)

// MaxFocusDepth is the deepest focus path accepted from user input:
// reason, species, continent.
const MaxFocusDepth = 3

// ValidateCategoryName validates one segment of a user-supplied focus path.
//
// Names are compared exactly against the dataset (no trimming or case
// folding), so the only rules are those that catch malformed input:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateCategoryName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "category name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "category name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "category name contains invalid control characters")
		}
	}

	return nil
}

// ValidateFocusPath validates a focus path given as names from the
// outermost level inward. An empty path addresses the root.
func ValidateFocusPath(path []string) error {
	if len(path) > MaxFocusDepth {
		return New(ErrCodeInvalidInput, "focus path too deep: %d levels (max %d)", len(path), MaxFocusDepth)
	}
	for _, name := range path {
		if err := ValidateCategoryName(name); err != nil {
			return err
		}
	}
	return nil
}

// ValidateURI validates a backend connection string against the allowed
// schemes (e.g. "redis", "mongodb+srv").
func ValidateURI(raw string, schemes ...string) error {
	if raw == "" {
		return New(ErrCodeInvalidConfig, "URI cannot be empty")
	}

	for _, r := range raw {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "URI contains invalid control characters")
		}
	}

	for _, s := range schemes {
		if strings.HasPrefix(raw, s+"://") {
			return nil
		}
	}
	return New(ErrCodeInvalidConfig, "URI must use one of the schemes: %s", strings.Join(schemes, ", "))
}
