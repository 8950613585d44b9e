package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"carehome/internal/model"
)

// ErrTokenUsed is returned when a reset token was consumed concurrently.
var ErrTokenUsed = errors.New("reset token already used")

// ResetTokenRepository persists password recovery tokens.
type ResetTokenRepository interface {
	Create(ctx context.Context, token *model.PasswordResetToken) error
	FindByHash(ctx context.Context, hash string) (*model.PasswordResetToken, error)
	FindOwnerEmail(ctx context.Context, userID uint) (string, error)
	// ConsumeAndSetPassword marks the token used, stores the new password hash
	// for email and retires the owner's other open tokens in one transaction.
	ConsumeAndSetPassword(ctx context.Context, tokenID, userID uint, email, passwordHash string, at time.Time) error
}

type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository creates a new reset token repository.
func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

func (r *resetTokenRepository) Create(ctx context.Context, token *model.PasswordResetToken) error {
	return r.db.WithContext(ctx).Omit("User").Create(token).Error
}

func (r *resetTokenRepository) FindByHash(ctx context.Context, hash string) (*model.PasswordResetToken, error) {
	var token model.PasswordResetToken
	if err := r.db.WithContext(ctx).Where("token_hash = ?", hash).Take(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *resetTokenRepository) FindOwnerEmail(ctx context.Context, userID uint) (string, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Select("email").Where("id = ?", userID).Take(&user).Error; err != nil {
		return "", err
	}
	return user.Email, nil
}

func (r *resetTokenRepository) ConsumeAndSetPassword(ctx context.Context, tokenID, userID uint, email, passwordHash string, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.PasswordResetToken{}).
			Where("id = ? AND used_at IS NULL", tokenID).
			Update("used_at", at)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTokenUsed
		}

		changed, err := NewUserRepository(tx).UpdatePasswordByEmail(ctx, email, passwordHash)
		if err != nil {
			return err
		}
		if changed == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&model.PasswordResetToken{}).
			Where("usuario_id = ? AND used_at IS NULL", userID).
			Update("used_at", at).Error
	})
}
