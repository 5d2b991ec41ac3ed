package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt digest from the given plaintext password.
//
// The digest is self-describing: it embeds the algorithm identifier, the
// cost factor and a random salt, so two calls with the same input produce
// different outputs. cost controls the work factor; values outside the
// bcrypt range fall back to bcrypt.DefaultCost.
//
// Parameters:
//
//	password - the plaintext password to hash
//	cost     - bcrypt cost factor (e.g. bcrypt.DefaultCost)
//
// Returns:
//
//	string - the encoded bcrypt digest
//	error  - non-nil if hashing fails (e.g. password longer than 72 bytes)
//
// Example usage:
//
//	digest, err := utils.HashPassword("s3cret", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether the plaintext password matches the given
// bcrypt digest.
//
// The comparison recomputes the hash with the salt and parameters embedded
// in the digest and compares in constant time. A malformed digest is not an
// error condition: it simply yields false.
//
// Example usage:
//
//	if !utils.VerifyPassword(input, user.Password) {
//	    // wrong password
//	}
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
