package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	// ResetTokenLength is the number of hex characters in a recovery token.
	ResetTokenLength = 32
	// ResetTokenExpiry is how long a recovery token stays valid.
	ResetTokenExpiry = 24 * time.Hour
)

// ResetToken is a freshly issued recovery token. Plain is handed to the user
// once; only Hash is stored.
type ResetToken struct {
	Plain     string
	Hash      string
	ExpiresAt time.Time
}

// NewResetToken generates a token from crypto/rand expiring ResetTokenExpiry after now.
func NewResetToken(now time.Time) (*ResetToken, error) {
	buf := make([]byte, ResetTokenLength/2)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate reset token: %w", err)
	}
	plain := hex.EncodeToString(buf)
	return &ResetToken{
		Plain:     plain,
		Hash:      HashResetToken(plain),
		ExpiresAt: now.Add(ResetTokenExpiry),
	}, nil
}

// HashResetToken returns the storage key for a plaintext token.
func HashResetToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
