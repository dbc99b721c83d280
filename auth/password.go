// Package auth implements the credential and token mechanisms the protected
// endpoints depend on: bcrypt password hashing, stateless JWT issuance and
// verification, and the request middleware that gates every protected route.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor used for every stored password,
// tuned for interactive login latency.
const bcryptCost = 10

// HashPassword produces a salted one-way hash of plain. Two calls with the
// same input yield different hashes; the salt is embedded in the output.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether hashed was produced from plain. A malformed
// hash is treated as a mismatch, never an error.
func CheckPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
