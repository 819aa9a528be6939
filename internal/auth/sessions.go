// Package auth provides cookie sessions and one-time-passcode login links
// for the admin area. There are no passwords: logging in means receiving a
// short-lived signed link by email and exchanging it for a session cookie.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the name of the admin session cookie
const SessionCookie = "resume_session"

// Token purposes. A login-link token cannot be presented as a session and
// vice versa.
const (
	purposeSession = "session"
	purposeLogin   = "login"
)

// loginTokenTTL bounds how long an emailed login link stays valid
const loginTokenTTL = 15 * time.Minute

// Claims are the JWT claims carried by both session and login tokens
type Claims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// Sessions issues and validates the HS256 tokens backing admin sessions
// and login links.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

// NewSessions creates a session service with the given signing secret and
// session lifetime.
func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl}
}

// Issue creates a session token for the given email
func (s *Sessions) Issue(email string) (string, error) {
	return s.sign(email, purposeSession, s.ttl)
}

// IssueLoginToken creates a short-lived token for an emailed login link
func (s *Sessions) IssueLoginToken(email string) (string, error) {
	return s.sign(email, purposeLogin, loginTokenTTL)
}

func (s *Sessions) sign(email, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:   email,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *Sessions) validate(tokenString, purpose string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Purpose != purpose {
		return nil, fmt.Errorf("token purpose mismatch")
	}
	return claims, nil
}

// VerifyLoginToken validates an emailed login token and returns the email
// it was issued for.
func (s *Sessions) VerifyLoginToken(tokenString string) (string, error) {
	claims, err := s.validate(tokenString, purposeLogin)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}

// FromRequest returns the session claims carried by the request cookie, or
// an error when no live session is present.
func (s *Sessions) FromRequest(r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, fmt.Errorf("no session cookie")
	}
	return s.validate(cookie.Value, purposeSession)
}

// Cookie wraps a session token in the admin session cookie
func (s *Sessions) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
