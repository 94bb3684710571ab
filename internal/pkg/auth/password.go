package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Bcrypt work factor
const BcryptCost = 12

// HashPassword hashes a plaintext password with a random salt.
// Hashing the same password twice yields different hashes.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
// Returns false on mismatch, never an error.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
