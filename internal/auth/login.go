package auth

import (
	"fmt"
	"net/url"
)

// LoginLinks issues one-time-passcode login links by email
type LoginLinks struct {
	sessions *Sessions
	mailer   Mailer
	baseURL  string
}

// NewLoginLinks creates the login-link service. baseURL is the public origin
// the callback link points back to.
func NewLoginLinks(sessions *Sessions, mailer Mailer, baseURL string) *LoginLinks {
	return &LoginLinks{sessions: sessions, mailer: mailer, baseURL: baseURL}
}

// Send emails a login link to the given address. Any failure is returned to
// the caller for inline display on the login form; nothing here panics.
func (l *LoginLinks) Send(email string) error {
	token, err := l.sessions.IssueLoginToken(email)
	if err != nil {
		return fmt.Errorf("failed to issue login token: %w", err)
	}

	link := l.baseURL + "/auth/callback?token=" + url.QueryEscape(token)
	body := fmt.Sprintf(
		"Follow this link to sign in to the admin panel:\n\n%s\n\nThe link expires in 15 minutes. If you did not request it, ignore this message.\n",
		link,
	)

	if err := l.mailer.Send(email, "Your admin sign-in link", body); err != nil {
		return fmt.Errorf("failed to send login link: %w", err)
	}
	return nil
}
