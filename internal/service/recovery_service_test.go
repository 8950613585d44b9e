package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"carehome/internal/auth"
	apperr "carehome/internal/errors"
	"carehome/internal/model"
	"carehome/internal/repository"
)

var fixedNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestRecovery(users *MockUserRepository, tokens *MockResetTokenRepository, mail *MockMailer) *recoveryService {
	svc := NewRecoveryService(NewAccountService(users), tokens, mail).(*recoveryService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestRecoveryService_RequestRecovery(t *testing.T) {
	t.Run("blank email", func(t *testing.T) {
		svc := newTestRecovery(new(MockUserRepository), new(MockResetTokenRepository), new(MockMailer))
		err := svc.RequestRecovery(context.Background(), "  ")
		assert.Equal(t, "Email es requerido", apperr.Message(err, ""))
	})

	t.Run("unknown email stores and sends nothing", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockResetTokenRepository)
		mail := new(MockMailer)
		users.On("FindByEmail", mock.Anything, "nadie@example.com").Return(nil, gorm.ErrRecordNotFound)
		svc := newTestRecovery(users, tokens, mail)

		require.NoError(t, svc.RequestRecovery(context.Background(), "nadie@example.com"))
		svc.Wait()
		tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mail.AssertNotCalled(t, "SendRecovery", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("known email stores the hash and mails the plain token", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockResetTokenRepository)
		mail := new(MockMailer)
		users.On("FindByEmail", mock.Anything, "ana@example.com").
			Return(&model.Identity{ID: 3, Username: "ana01", Email: "ana@example.com"}, nil)

		var stored *model.PasswordResetToken
		tokens.On("Create", mock.Anything, mock.AnythingOfType("*model.PasswordResetToken")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*model.PasswordResetToken) }).
			Return(nil)

		var sent string
		mail.On("SendRecovery", mock.Anything, "ana@example.com", mock.AnythingOfType("string"), fixedNow.Add(auth.ResetTokenExpiry)).
			Run(func(args mock.Arguments) { sent = args.String(2) }).
			Return(nil)

		svc := newTestRecovery(users, tokens, mail)
		require.NoError(t, svc.RequestRecovery(context.Background(), "ana@example.com"))
		svc.Wait()

		require.NotNil(t, stored)
		assert.Len(t, sent, auth.ResetTokenLength)
		assert.Equal(t, uint(3), stored.UserID)
		assert.Equal(t, auth.HashResetToken(sent), stored.TokenHash)
		assert.NotEqual(t, sent, stored.TokenHash)
		assert.Equal(t, fixedNow.Add(24*time.Hour), stored.ExpiresAt)
		mail.AssertExpectations(t)
	})

	t.Run("mail failure is not surfaced", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockResetTokenRepository)
		mail := new(MockMailer)
		users.On("FindByEmail", mock.Anything, "ana@example.com").
			Return(&model.Identity{ID: 3, Email: "ana@example.com"}, nil)
		tokens.On("Create", mock.Anything, mock.Anything).Return(nil)
		mail.On("SendRecovery", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		svc := newTestRecovery(users, tokens, mail)
		assert.NoError(t, svc.RequestRecovery(context.Background(), "ana@example.com"))
		svc.Wait()
		mail.AssertExpectations(t)
	})

	t.Run("slow delivery does not delay the response", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockResetTokenRepository)
		mail := new(MockMailer)
		users.On("FindByEmail", mock.Anything, "ana@example.com").
			Return(&model.Identity{ID: 3, Email: "ana@example.com"}, nil)

		live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
		release := make(chan struct{})
		tokens.On("Create", live, mock.Anything).Return(nil)
		mail.On("SendRecovery", live, "ana@example.com", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { <-release }).
			Return(nil)

		svc := newTestRecovery(users, tokens, mail)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- svc.RequestRecovery(ctx, "ana@example.com") }()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			close(release)
			t.Fatal("RequestRecovery waited for mail delivery")
		}

		// The request context ending must not abort delivery.
		cancel()
		close(release)
		svc.Wait()
		tokens.AssertExpectations(t)
		mail.AssertExpectations(t)
	})
}

func TestRecoveryService_VerifyToken(t *testing.T) {
	const plain = "0123456789abcdef0123456789abcdef"
	hash := auth.HashResetToken(plain)
	used := fixedNow.Add(-time.Minute)

	tests := []struct {
		name    string
		token   string
		record  *model.PasswordResetToken
		findErr error
		wantMsg string
	}{
		{name: "blank", token: "", wantMsg: "Token inválido"},
		{name: "unknown", token: plain, findErr: gorm.ErrRecordNotFound, wantMsg: "Token inválido"},
		{
			name:    "consumed",
			token:   plain,
			record:  &model.PasswordResetToken{ID: 1, UserID: 3, ExpiresAt: fixedNow.Add(time.Hour), UsedAt: &used},
			wantMsg: "Token inválido",
		},
		{
			name:    "expired",
			token:   plain,
			record:  &model.PasswordResetToken{ID: 1, UserID: 3, ExpiresAt: fixedNow.Add(-time.Second)},
			wantMsg: "Token expirado",
		},
		{
			name:   "valid",
			token:  plain,
			record: &model.PasswordResetToken{ID: 1, UserID: 3, ExpiresAt: fixedNow.Add(time.Hour)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := new(MockResetTokenRepository)
			if tt.record != nil || tt.findErr != nil {
				tokens.On("FindByHash", mock.Anything, hash).Return(tt.record, tt.findErr)
			}
			tokens.On("FindOwnerEmail", mock.Anything, uint(3)).Return("ana@example.com", nil).Maybe()
			svc := newTestRecovery(new(MockUserRepository), tokens, new(MockMailer))

			info, err := svc.VerifyToken(context.Background(), tt.token)

			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.True(t, apperr.Is(err, apperr.KindValidation))
				assert.Equal(t, tt.wantMsg, apperr.Message(err, ""))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ana@example.com", info.Email)
			assert.Equal(t, fixedNow.Add(time.Hour), info.Expiration)
		})
	}
}

func TestRecoveryService_ResetPassword(t *testing.T) {
	const plain = "0123456789abcdef0123456789abcdef"
	hash := auth.HashResetToken(plain)
	valid := func() *model.PasswordResetToken {
		return &model.PasswordResetToken{ID: 11, UserID: 3, ExpiresAt: fixedNow.Add(time.Hour)}
	}

	t.Run("form checks run first", func(t *testing.T) {
		svc := newTestRecovery(new(MockUserRepository), new(MockResetTokenRepository), new(MockMailer))
		ctx := context.Background()

		err := svc.ResetPassword(ctx, ResetPasswordInput{Token: plain, Password: "secreto1"})
		assert.Equal(t, "Todos los campos son requeridos", apperr.Message(err, ""))

		err = svc.ResetPassword(ctx, ResetPasswordInput{Token: plain, Password: "secreto1", PasswordConfirm: "secreto2"})
		assert.Equal(t, "Las contraseñas no coinciden", apperr.Message(err, ""))

		err = svc.ResetPassword(ctx, ResetPasswordInput{Token: plain, Password: "123", PasswordConfirm: "123"})
		assert.Equal(t, "La contraseña debe tener al menos 6 caracteres", apperr.Message(err, ""))

		long := strings.Repeat("k", 100)
		err = svc.ResetPassword(ctx, ResetPasswordInput{Token: plain, Password: long, PasswordConfirm: long})
		assert.True(t, apperr.Is(err, apperr.KindValidation))
		assert.Equal(t, "La contraseña no puede superar los 72 bytes", apperr.Message(err, ""))
	})

	t.Run("success consumes the token", func(t *testing.T) {
		tokens := new(MockResetTokenRepository)
		tokens.On("FindByHash", mock.Anything, hash).Return(valid(), nil)
		tokens.On("FindOwnerEmail", mock.Anything, uint(3)).Return("ana@example.com", nil)
		tokens.On("ConsumeAndSetPassword", mock.Anything, uint(11), uint(3), "ana@example.com",
			mock.MatchedBy(func(h string) bool { return auth.CheckPassword(h, "nuevaclave") == nil }),
			fixedNow).Return(nil)
		svc := newTestRecovery(new(MockUserRepository), tokens, new(MockMailer))

		err := svc.ResetPassword(context.Background(), ResetPasswordInput{
			Token: plain, Password: "nuevaclave", PasswordConfirm: "nuevaclave",
		})
		require.NoError(t, err)
		tokens.AssertExpectations(t)
	})

	t.Run("concurrently consumed token is rejected", func(t *testing.T) {
		tokens := new(MockResetTokenRepository)
		tokens.On("FindByHash", mock.Anything, hash).Return(valid(), nil)
		tokens.On("FindOwnerEmail", mock.Anything, uint(3)).Return("ana@example.com", nil)
		tokens.On("ConsumeAndSetPassword", mock.Anything, uint(11), uint(3), "ana@example.com", mock.Anything, fixedNow).
			Return(repository.ErrTokenUsed)
		svc := newTestRecovery(new(MockUserRepository), tokens, new(MockMailer))

		err := svc.ResetPassword(context.Background(), ResetPasswordInput{
			Token: plain, Password: "nuevaclave", PasswordConfirm: "nuevaclave",
		})
		assert.Equal(t, "Token inválido", apperr.Message(err, ""))
	})

	t.Run("expired token never reaches storage", func(t *testing.T) {
		tokens := new(MockResetTokenRepository)
		expired := valid()
		expired.ExpiresAt = fixedNow
		tokens.On("FindByHash", mock.Anything, hash).Return(expired, nil)
		svc := newTestRecovery(new(MockUserRepository), tokens, new(MockMailer))

		err := svc.ResetPassword(context.Background(), ResetPasswordInput{
			Token: plain, Password: "nuevaclave", PasswordConfirm: "nuevaclave",
		})
		assert.Equal(t, "Token expirado", apperr.Message(err, ""))
		tokens.AssertNotCalled(t, "ConsumeAndSetPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRecoveryService_FormatChecks(t *testing.T) {
	svc := newTestRecovery(new(MockUserRepository), new(MockResetTokenRepository), new(MockMailer))

	assert.True(t, svc.ValidateEmailFormat(" ana@example.com "))
	assert.False(t, svc.ValidateEmailFormat("ana"))

	ok, msg := svc.ValidatePasswordFormat("corta")
	assert.False(t, ok)
	assert.Equal(t, "La contraseña debe tener al menos 6 caracteres", msg)
}
