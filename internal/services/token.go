package services

import (
	"crypto/rand"
	"fmt"
)

const (
	tokenLength  = 6
	tokenCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// generateToken returns a short human-shareable tracking token. Customers read
// these aloud at the counter, so the charset is upper-case alphanumeric only.
// Bytes at or above the largest multiple of the charset size are rejected so
// every character is drawn with equal probability.
func generateToken(length int) (string, error) {
	const limit = 256 - 256%len(tokenCharset)

	token := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(token) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			token = append(token, tokenCharset[int(b)%len(tokenCharset)])
			if len(token) == length {
				break
			}
		}
	}
	return string(token), nil
}
