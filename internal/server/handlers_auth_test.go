package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-site/internal/auth"
)

// postLogin submits the login form without a session; the login routes are
// exempt from the guard.
func postLogin(ts *testServer, form url.Values) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, r)
	return w
}

func TestLogin_InvalidEmail(t *testing.T) {
	ts := newTestServer(newMockStore())

	tests := []struct {
		name  string
		email string
	}{
		{name: "missing", email: ""},
		{name: "not an address", email: "not-an-email"},
		{name: "bare domain", email: "@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postLogin(ts, url.Values{"email": {tt.email}})
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "valid email address")
		})
	}
}

func TestLogin_SendsLink(t *testing.T) {
	ts := newTestServer(newMockStore())

	w := postLogin(ts, url.Values{"email": {"admin@example.com"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, "admin@example.com", ts.mailer.to)
	assert.Contains(t, ts.mailer.body, "/auth/callback?token=")
}

func TestLogin_MailerFailureSurfacesOnForm(t *testing.T) {
	ts := newTestServer(newMockStore())
	ts.mailer.err = fmt.Errorf("relay refused")

	w := postLogin(ts, url.Values{"email": {"admin@example.com"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "relay refused")
}

func TestAuthCallback_BadTokenRedirectsToLogin(t *testing.T) {
	ts := newTestServer(newMockStore())

	r := httptest.NewRequest(http.MethodGet, "/auth/callback?token=garbage", nil)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, loginPath, w.Header().Get("Location"))
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthCallback_SessionTokenRejected(t *testing.T) {
	ts := newTestServer(newMockStore())

	// A session token pasted into the callback is not a login token
	session, err := ts.sessions.Issue("admin@example.com")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/auth/callback?token="+url.QueryEscape(session), nil)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, loginPath, w.Header().Get("Location"))
}

func TestAuthCallback_ExchangesTokenForSession(t *testing.T) {
	ts := newTestServer(newMockStore())

	token, err := ts.sessions.IssueLoginToken("admin@example.com")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/auth/callback?token="+url.QueryEscape(token), nil)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.SessionCookie, cookies[0].Name)

	// The issued cookie admits a follow-up admin request
	follow := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	follow.AddCookie(cookies[0])
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, follow)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginFlow_EndToEnd(t *testing.T) {
	ts := newTestServer(newMockStore())

	// request a link
	w := postLogin(ts, url.Values{"email": {"admin@example.com"}})
	require.Equal(t, http.StatusOK, w.Code)

	// pull the link out of the captured email and follow it
	idx := strings.Index(ts.mailer.body, "http://localhost:8080/auth/callback")
	require.GreaterOrEqual(t, idx, 0)
	link := ts.mailer.body[idx:]
	if end := strings.IndexAny(link, " \n"); end >= 0 {
		link = link[:end]
	}

	r := httptest.NewRequest(http.MethodGet, link, nil)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))
	require.Len(t, rec.Result().Cookies(), 1)
}
