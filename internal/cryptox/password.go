// Package cryptox implements the credential schemes the user store can be
// configured with.
//
// Two schemes exist:
//
//   - Plaintext preserves the behaviour of the original application: the
//     password is stored and compared verbatim. Keep it when the data
//     directory must stay readable by (or migrated from) the original.
//   - Bcrypt stores a bcrypt hash instead of the password. Records written
//     under one scheme do not verify under the other, so pick one scheme
//     per data directory.
package cryptox

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordScheme encodes a password for storage and verifies a login
// attempt against the stored credential.
type PasswordScheme interface {
	Encode(password string) (string, error)
	Verify(stored, candidate string) bool
}

// Plaintext stores passwords verbatim and compares them byte for byte,
// case-sensitive.
type Plaintext struct{}

func (Plaintext) Encode(password string) (string, error) {
	return password, nil
}

func (Plaintext) Verify(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Bcrypt stores a bcrypt hash. A zero Cost means bcrypt.DefaultCost.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Encode(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

func (b Bcrypt) Verify(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

// Wipe overwrites b with zeros. Call it once raw password input is no
// longer needed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
