// Package validate checks user-supplied counter input before it reaches the
// repository. The repository primitives trust their arguments; every CLI and
// TUI entry point routes raw strings through here first.
package validate

import (
	"errors"
	"strconv"
	"strings"
)

// MaxNameLength bounds counter names after trimming.
const MaxNameLength = 50

var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNameTooLong    = errors.New("name cannot exceed 50 characters")
	ErrNotPositiveInt = errors.New("must be a positive whole number")
	ErrNegativeCount  = errors.New("count cannot be negative")
)

// SanitizeName trims leading and trailing whitespace. Internal whitespace is
// preserved.
func SanitizeName(s string) string {
	return strings.TrimSpace(s)
}

// Name validates a counter name after sanitization.
func Name(s string) error {
	s = SanitizeName(s)
	if s == "" {
		return ErrEmptyName
	}
	if len(s) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// Target parses a target value, which must be a positive integer.
func Target(s string) (int, error) {
	return positiveInt(s)
}

// IncrementAmount parses an increment/decrement amount, which must be a
// positive integer.
func IncrementAmount(s string) (int, error) {
	return positiveInt(s)
}

// Count parses a direct count edit, which must be a non-negative integer.
func Count(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotPositiveInt
	}
	if n < 0 {
		return 0, ErrNegativeCount
	}
	return n, nil
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, ErrNotPositiveInt
	}
	return n, nil
}
