// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// account errors
	ErrDuplicateUsername  = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// storage errors are kept distinct from domain outcomes so controllers
	// can map them to 500 instead of a user-facing message
	ErrStorage = errors.New("storage error")
)

// NotFoundError reports that an entity does not exist. A missing row is a
// valid outcome, not a failure, so this carries enough data for the caller
// to build a message and never wraps a storage error.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// NotFound builds a NotFoundError for the given entity kind and id.
func NotFound(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError carries one user-facing reason per unmet rule.
type ValidationError struct {
	Field   string
	Reasons []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, strings.Join(e.Reasons, "; "))
}

// Validation builds a ValidationError for a field.
func Validation(field string, reasons ...string) *ValidationError {
	return &ValidationError{Field: field, Reasons: reasons}
}

// AsValidation returns the ValidationError in err's chain, or nil.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// Storage wraps a low-level database error so errors.Is(err, ErrStorage)
// holds while the original cause stays in the chain.
func Storage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
