package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"carehome/internal/auth"
	apperr "carehome/internal/errors"
	"carehome/internal/mailer"
	"carehome/internal/model"
	"carehome/internal/repository"
)

// TokenInfo describes a valid recovery token.
type TokenInfo struct {
	Email      string    `json:"email"`
	Expiration time.Time `json:"expiration"`
}

// ResetPasswordInput is the payload of the password reset form.
type ResetPasswordInput struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// RecoveryService issues, verifies and redeems password recovery tokens.
type RecoveryService interface {
	RequestRecovery(ctx context.Context, email string) error
	VerifyToken(ctx context.Context, token string) (*TokenInfo, error)
	ResetPassword(ctx context.Context, in ResetPasswordInput) error
	ValidateEmailFormat(email string) bool
	ValidatePasswordFormat(password string) (bool, string)
	// Wait blocks until background recovery deliveries have finished.
	Wait()
}

type recoveryService struct {
	accounts AccountService
	tokens   repository.ResetTokenRepository
	mail     mailer.RecoveryMailer
	now      func() time.Time
	pending  sync.WaitGroup
}

// NewRecoveryService creates a new recovery service.
func NewRecoveryService(
	accounts AccountService,
	tokens repository.ResetTokenRepository,
	mail mailer.RecoveryMailer,
) RecoveryService {
	return &recoveryService{
		accounts: accounts,
		tokens:   tokens,
		mail:     mail,
		now:      time.Now,
	}
}

// RequestRecovery issues a token for email when an account exists. The outcome is
// the same whether or not it does, so callers cannot probe for addresses.
func (s *recoveryService) RequestRecovery(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperr.Validation("Email es requerido")
	}

	// Generated before the lookup so both branches do the same work.
	token, err := auth.NewResetToken(s.now())
	if err != nil {
		return persistenceFault("Error en la recuperación de contraseña", err)
	}

	identity, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil
		}
		return err
	}

	// Storage and mail run off the request path so a known address costs the
	// caller no more time than an unknown one.
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.issue(context.WithoutCancel(ctx), identity, token)
	}()
	return nil
}

// Wait blocks until every recovery delivery started so far has finished.
func (s *recoveryService) Wait() {
	s.pending.Wait()
}

// issue stores the token hash and mails the plain token to its owner.
func (s *recoveryService) issue(ctx context.Context, identity *model.Identity, token *auth.ResetToken) {
	record := &model.PasswordResetToken{
		UserID:    identity.ID,
		TokenHash: token.Hash,
		ExpiresAt: token.ExpiresAt,
	}
	if err := s.tokens.Create(ctx, record); err != nil {
		log.Error().Err(err).Uint("user_id", identity.ID).Msg("store reset token")
		return
	}
	if err := s.mail.SendRecovery(ctx, identity.Email, token.Plain, token.ExpiresAt); err != nil {
		log.Error().Err(err).Uint("user_id", identity.ID).Msg("send recovery mail")
	}
}

// VerifyToken checks that token exists, is unused and has not expired.
func (s *recoveryService) VerifyToken(ctx context.Context, token string) (*TokenInfo, error) {
	record, email, err := s.verify(ctx, token)
	if err != nil {
		return nil, err
	}
	return &TokenInfo{Email: email, Expiration: record.ExpiresAt}, nil
}

// ResetPassword sets a new password for the owner of a valid token and consumes it.
func (s *recoveryService) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	if strings.TrimSpace(in.Token) == "" || in.Password == "" || in.PasswordConfirm == "" {
		return apperr.Validation("Todos los campos son requeridos")
	}
	if in.Password != in.PasswordConfirm {
		return apperr.Validation("Las contraseñas no coinciden")
	}
	if ok, msg := ValidatePassword(in.Password); !ok {
		return apperr.Validation(msg)
	}

	record, email, err := s.verify(ctx, in.Token)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return persistenceFault("Error al actualizar contraseña", err)
	}

	err = s.tokens.ConsumeAndSetPassword(ctx, record.ID, record.UserID, email, hash, s.now())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrTokenUsed):
		return apperr.Validation("Token inválido")
	case apperr.IsRecordNotFound(err):
		return apperr.NotFound("Email no encontrado")
	default:
		return persistenceFault("Error al actualizar contraseña", err)
	}
}

// ValidateEmailFormat applies the account email rule to the recovery form.
func (s *recoveryService) ValidateEmailFormat(email string) bool {
	return ValidateEmail(strings.TrimSpace(email))
}

// ValidatePasswordFormat applies the account password rule to the recovery form.
func (s *recoveryService) ValidatePasswordFormat(password string) (bool, string) {
	return ValidatePassword(password)
}

// verify resolves token to its record and the owner's email.
func (s *recoveryService) verify(ctx context.Context, token string) (*model.PasswordResetToken, string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, "", apperr.Validation("Token inválido")
	}
	record, err := s.tokens.FindByHash(ctx, auth.HashResetToken(token))
	if err != nil {
		if apperr.IsRecordNotFound(err) {
			return nil, "", apperr.Validation("Token inválido")
		}
		return nil, "", persistenceFault("Error al verificar token", err)
	}
	if record.Used() {
		return nil, "", apperr.Validation("Token inválido")
	}
	if record.Expired(s.now()) {
		return nil, "", apperr.Validation("Token expirado")
	}

	email, err := s.tokens.FindOwnerEmail(ctx, record.UserID)
	if err != nil {
		if apperr.IsRecordNotFound(err) {
			return nil, "", apperr.Validation("Token inválido")
		}
		return nil, "", persistenceFault("Error al verificar token", err)
	}
	return record, email, nil
}
