// Package cryptoutil wraps the password-hashing and history-archive
// encryption primitives used across services, grounded on the teacher's
// domain/auth bcrypt usage and extended with AES-GCM + HKDF for the game
// history archive (§4.4.7).
package cryptoutil

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces an adaptive-cost bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashToken deterministically hashes an opaque bearer token (refresh
// credentials, not passwords) so the Persistence Adapter can index and
// look it up by exact match. Unlike bcrypt's salted password hashes, a
// refresh credential must be found by equality, not verified one
// credential at a time.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
