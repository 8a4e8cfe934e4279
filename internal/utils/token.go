package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewSessionToken returns a 64-hex-char unguessable token.
func NewSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
