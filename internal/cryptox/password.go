// Package cryptox wraps the password hashing primitive used by the account
// service. Hashes are bcrypt, so every hash carries its own random salt and
// cost factor.
package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when the configuration does not
// override it.
const DefaultCost = 10

// ErrMismatch is returned by ComparePassword when the password does not
// produce the stored hash.
var ErrMismatch = errors.New("password mismatch")

// PasswordHasher hashes and verifies passwords with a fixed bcrypt cost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using cost. Values outside bcrypt's
// accepted range fall back to DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Cost reports the work factor new hashes are created with.
func (h *PasswordHasher) Cost() int {
	return h.cost
}

// HashPassword returns the bcrypt hash of password.
func (h *PasswordHasher) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword checks password against hash. A wrong password yields
// ErrMismatch; a malformed hash yields a wrapped bcrypt error.
func (h *PasswordHasher) ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return fmt.Errorf("compare password: %w", err)
}

// MaxPasswordBytes is the longest input bcrypt accepts. Longer passwords are
// rejected by HashPassword rather than silently truncated.
const MaxPasswordBytes = 72
