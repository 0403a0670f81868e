// internal/validation/text.go
package validation

import (
	"strings"

	"statusfeed/internal/apperrors"
)

// MaxStatusLength is the maximum status length in runes, after trimming.
const MaxStatusLength = 280

// CheckUsername rejects blank usernames. Uniqueness is the store's job.
func CheckUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return apperrors.Validation("username", "Username cannot be empty")
	}
	return nil
}

// CheckStatusText trims surrounding whitespace and validates the result.
// The trimmed text is what gets persisted.
func CheckStatusText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", apperrors.Validation("text", "Status cannot be empty")
	}
	if len([]rune(trimmed)) > MaxStatusLength {
		return "", apperrors.Validation("text", "Status cannot be longer than 280 characters")
	}
	return trimmed, nil
}
