package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// ResetTokenTTLSeconds is how long a password-reset token stays valid.
const ResetTokenTTLSeconds = 3600

// NewResetToken returns a 64-character hex token from 32 random bytes.
func NewResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
