// Package credential turns plaintext secrets into salted one-way hashes.
package credential

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxSecretBytes is the longest input bcrypt accepts.
const maxSecretBytes = 72

var (
	ErrEmptySecret   = errors.New("password may not be blank")
	ErrSecretTooLong = fmt.Errorf("password may not be longer than %d bytes", maxSecretBytes)
)

// Hasher hashes plaintext secrets for storage and verifies them later.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a Hasher using bcrypt at the given cost. Costs outside
// bcrypt's range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	if err := CheckSecret(plain); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// CheckSecret reports whether plain can be hashed at all.
func CheckSecret(plain string) error {
	if plain == "" {
		return ErrEmptySecret
	}
	if len(plain) > maxSecretBytes {
		return ErrSecretTooLong
	}
	return nil
}

// IsInputError reports whether err was caused by the plaintext itself rather
// than by the hashing backend.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptySecret) || errors.Is(err, ErrSecretTooLong)
}
