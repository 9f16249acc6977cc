package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateFinite validates that a dimension value is a finite number.
// NaN and infinities are rejected with an INVALID_GEOMETRY error naming
// the offending field.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidGeometry, "%s must be a finite number, got %v", field, v)
	}
	return nil
}

// ValidatePositive validates that a dimension value is finite and strictly
// positive. Zero is rejected: a zero-sized dimension always indicates an
// input error, never a legitimate part.
func ValidatePositive(field string, v float64) error {
	if err := ValidateFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeInvalidGeometry, "%s must be positive, got %v", field, v)
	}
	return nil
}

// ValidatePartID validates a part identifier used in spec files, drawing
// title blocks, and output filenames.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidatePartID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidSpec, "part id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidSpec, "part id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSpec, "part id contains invalid control characters")
		}
	}

	// Part IDs end up in output filenames, so path syntax is rejected.
	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidSpec, "part id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "output path too long (max 500 characters)")
	}

	for _, r := range path {
		if r == 0 || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}

	return nil
}
