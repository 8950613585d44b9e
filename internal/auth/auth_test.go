package auth

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)

	assert.NoError(t, CheckPassword(hash, "secreto123"))
	assert.ErrorIs(t, CheckPassword(hash, "otra"), ErrPasswordMismatch)
	assert.ErrorIs(t, CheckPassword("", "secreto123"), ErrPasswordMismatch)
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("secreto123")
	require.NoError(t, err)
	b, err := HashPassword("secreto123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestNewResetToken(t *testing.T) {
	now := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	tok, err := NewResetToken(now)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), tok.Plain)
	assert.Equal(t, HashResetToken(tok.Plain), tok.Hash)
	assert.Len(t, tok.Hash, 64)
	assert.Equal(t, now.Add(24*time.Hour), tok.ExpiresAt)

	other, err := NewResetToken(now)
	require.NoError(t, err)
	assert.NotEqual(t, tok.Plain, other.Plain)
}
