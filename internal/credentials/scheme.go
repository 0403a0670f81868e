// internal/credentials/scheme.go
package credentials

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Compare when the password does not match.
var ErrMismatch = errors.New("credentials do not match")

// Scheme is the narrow seam between account storage and password handling.
// The stored form of a password never leaves this package's control, so a
// hashing scheme can replace the plaintext one without touching callers.
type Scheme interface {
	// Store converts a raw password into its persisted form.
	Store(password string) (string, error)
	// Compare checks a raw password against the persisted form and
	// returns ErrMismatch when they do not correspond.
	Compare(stored, password string) error
}

// New returns the scheme for a config name. An empty name selects
// plaintext, which matches the legacy behavior this service replaces.
func New(name string) (Scheme, error) {
	switch name {
	case "", "plaintext":
		return Plaintext{}, nil
	case "bcrypt":
		return Bcrypt{}, nil
	default:
		return nil, fmt.Errorf("unknown credential scheme %q", name)
	}
}

// Plaintext stores and compares passwords as-is. Kept for behavioral
// parity with the system this replaces; bcrypt is the upgrade path.
type Plaintext struct{}

func (Plaintext) Store(password string) (string, error) {
	return password, nil
}

func (Plaintext) Compare(stored, password string) error {
	if stored != password {
		return ErrMismatch
	}
	return nil
}

// Bcrypt hashes passwords with the default cost.
type Bcrypt struct{}

func (Bcrypt) Store(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (Bcrypt) Compare(stored, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}
