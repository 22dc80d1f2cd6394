package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 digest of password. Unsalted and
// single-round to stay compatible with digests already on disk.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password hashes to digest.
func VerifyPassword(password, digest string) bool {
	return HashPassword(password) == digest
}
