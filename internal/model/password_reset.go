package model

import "time"

// PasswordResetToken records an issued recovery token. Only the token's hash is stored.
type PasswordResetToken struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"usuario_id" gorm:"column:usuario_id;not null;index"`
	TokenHash string     `json:"-" gorm:"column:token_hash;size:64;not null;uniqueIndex"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`

	// Relations
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Expired reports whether the token is past its expiry at now.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Used reports whether the token was already consumed.
func (t *PasswordResetToken) Used() bool {
	return t.UsedAt != nil
}
