package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"net/url"
	"time"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog/log"

	"carehome/internal/config"
)

// RecoveryMailer delivers password recovery links.
type RecoveryMailer interface {
	SendRecovery(ctx context.Context, to, token string, expiresAt time.Time) error
}

// SMTPMailer sends mail through an SMTP relay.
type SMTPMailer struct {
	host     string
	user     string
	password string
	from     string
	addr     string
	resetURL string
}

// Ensure SMTPMailer implements RecoveryMailer
var _ RecoveryMailer = (*SMTPMailer)(nil)

// New returns an SMTP mailer, or a log-only mailer when no SMTP host is configured.
func New(cfg *config.Config) RecoveryMailer {
	if cfg.SMTPHost == "" {
		return LogMailer{}
	}
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		resetURL: cfg.ResetURL,
	}
}

// SendRecovery mails the reset link for token to the account address.
func (m *SMTPMailer) SendRecovery(ctx context.Context, to, token string, expiresAt time.Time) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = "Recuperación de contraseña"
	e.Text = []byte(RecoveryBody(m.resetURL, token, expiresAt))

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	if err := e.Send(m.addr, auth); err != nil {
		return fmt.Errorf("mailer: send recovery: %w", err)
	}
	return nil
}

// RecoveryBody renders the plain-text recovery message.
func RecoveryBody(resetURL, token string, expiresAt time.Time) string {
	link := resetURL + "?token=" + url.QueryEscape(token)
	return fmt.Sprintf(
		"Recibimos una solicitud para restablecer su contraseña.\n\n"+
			"Use el siguiente enlace antes del %s:\n%s\n\n"+
			"Si usted no hizo esta solicitud, ignore este mensaje.\n",
		expiresAt.Format("2006-01-02 15:04:05"), link)
}

// LogMailer records that a mail would have been sent. It never logs the token.
type LogMailer struct{}

// SendRecovery implements RecoveryMailer.
func (LogMailer) SendRecovery(ctx context.Context, to, token string, expiresAt time.Time) error {
	log.Warn().Str("to", to).Time("expires_at", expiresAt).Msg("smtp not configured; recovery mail not sent")
	return nil
}
