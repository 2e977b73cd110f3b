package errors

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// Limits applied to requested chart dimensions.
const (
	MaxDimension = 10000.0
	maxPathLen   = 500
)

// ValidatePath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLen {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLen)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateDimensions checks a requested surface size.
// Zero means "use the default" and is accepted.
func ValidateDimensions(width, height float64) error {
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidDimensions, "dimensions must not be negative (got %gx%g)", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidDimensions, "dimensions too large (max %g)", MaxDimension)
	}
	return nil
}

// hexColorRegex matches #rgb and #rrggbb colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a fill or stroke color. Only hex colors are
// accepted so they can be embedded in SVG attributes without escaping.
func ValidateColor(c string) error {
	if !hexColorRegex.MatchString(c) {
		return New(ErrCodeInvalidColor, "invalid color %q (want #rgb or #rrggbb)", c)
	}
	return nil
}

// ValidateFormat checks that format is one of valid.
func ValidateFormat(format string, valid map[string]bool) error {
	if !valid[format] {
		names := make([]string, 0, len(valid))
		for k := range valid {
			names = append(names, k)
		}
		slices.Sort(names)
		return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(names, ", "))
	}
	return nil
}
