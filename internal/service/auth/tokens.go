package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	// resetTokenBytes yields a 64 character hex reset token.
	resetTokenBytes = 32

	// RememberTokenLength is the length of generated remember tokens.
	RememberTokenLength = 60
)

const rememberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewResetToken returns a random 64 character hex string.
func NewResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewRememberToken returns a random alphanumeric string of
// RememberTokenLength characters.
func NewRememberToken() (string, error) {
	b := make([]byte, RememberTokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate remember token: %w", err)
	}
	for i := range b {
		b[i] = rememberAlphabet[int(b[i])%len(rememberAlphabet)]
	}
	return string(b), nil
}
