// Package password provides bcrypt-based password hashing and
// verification. The plaintext password exists only for the duration of
// a Hash or Verify call and is never stored.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Verify when the password does not match
// the stored hash.
var ErrMismatch = errors.New("password does not match hash")

// maxPasswordLength is the bcrypt input limit in bytes.
const maxPasswordLength = 72

// Hasher hashes and verifies passwords with bcrypt. The zero value is
// not usable; construct with NewHasher.
type Hasher struct {
	cost int
}

// NewHasher constructs a Hasher with the given bcrypt cost. Costs
// outside the valid bcrypt range fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the salted bcrypt hash of password. bcrypt generates a
// fresh random salt per call, so two hashes of the same password
// differ.
func (h *Hasher) Hash(password string) (string, error) {
	if len(password) > maxPasswordLength {
		return "", fmt.Errorf("password longer than %d bytes", maxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify compares password against the stored hash. Returns nil on
// match, ErrMismatch when the password is wrong, or a wrapped error for
// malformed hashes.
func (h *Hasher) Verify(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("verifying password: %w", err)
	}
}
