// Package hasher wraps bcrypt behind the PasswordHasher port.
package hasher

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 12

// Bcrypt hashes passwords with a configurable work factor. The salt is
// embedded in the hash by bcrypt itself.
type Bcrypt struct {
	cost int
}

// New returns a Bcrypt hasher. Costs outside bcrypt's valid range fall back
// to DefaultCost.
func New(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches hashed. Malformed hashes simply
// fail the comparison; they never panic or surface an error.
func (b *Bcrypt) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
