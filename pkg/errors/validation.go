package errors

import (
	"strings"
	"unicode"
)

// Reserved grid symbols. They never name a frequency.
const (
	EmptyCell        = '.'
	InterferenceCell = '#'
)

// MaxDimension bounds the rows and columns of a map. The binary header stores
// dimensions as int32; anything larger than this is treated as corruption.
const MaxDimension = 4096

// ValidateFrequency validates a frequency symbol.
//
// The validation rules are:
//   - Must be a printable, non-space ASCII character
//   - Must not be one of the reserved grid symbols ('.' and '#')
func ValidateFrequency(b byte) error {
	if b > unicode.MaxASCII || !unicode.IsPrint(rune(b)) || b == ' ' {
		return New(ErrCodeInvalidInput, "invalid frequency symbol %q", b)
	}
	if b == EmptyCell || b == InterferenceCell {
		return New(ErrCodeInvalidInput, "frequency symbol %q is reserved", b)
	}
	return nil
}

// ValidateDimensions validates map dimensions read from a file or flags.
func ValidateDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return New(ErrCodeInvalidMap, "map dimensions must be positive, got %dx%d", rows, cols)
	}
	if rows > MaxDimension || cols > MaxDimension {
		return New(ErrCodeInvalidMap, "map dimensions %dx%d exceed %d", rows, cols, MaxDimension)
	}
	return nil
}

// ValidatePath validates a map file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidInput, "path has leading or trailing whitespace")
	}

	return nil
}
