package auth

import (
	"fmt"
	"net/smtp"

	"github.com/jonathan/resume-site/internal/config"
)

// Mailer delivers a single plain-text message
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through an authenticated SMTP relay
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer creates a mailer for the given SMTP settings
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers one message. Returns an error when SMTP credentials are
// missing rather than attempting an unauthenticated send.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if !m.cfg.MailEnabled() {
		return fmt.Errorf("SMTP credentials not configured")
	}

	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := m.cfg.Host + ":" + m.cfg.Port
	smtpAuth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)

	if err := smtp.SendMail(addr, smtpAuth, m.cfg.User, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
