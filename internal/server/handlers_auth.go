package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type loginRequest struct {
	Email string `validate:"required,email"`
}

// handleLoginForm is the login entry point the session guard redirects to
func (s *Server) handleLoginForm(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "submit your email to receive a sign-in link",
	})
}

// handleLogin accepts an email address and sends a one-time sign-in link.
// Delivery failures surface inline on the form, never as a crash.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.formFail(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	req := loginRequest{Email: r.PostFormValue("email")}
	if err := validate.Struct(&req); err != nil {
		s.formFail(w, http.StatusBadRequest, "a valid email address is required")
		return
	}

	if err := s.loginLinks.Send(req.Email); err != nil {
		s.formFail(w, http.StatusBadRequest, err.Error())
		return
	}

	s.successResponse(w)
}

// handleAuthCallback exchanges an emailed login token for a session cookie
func (s *Server) handleAuthCallback(w http.ResponseWriter, r *http.Request) {
	email, err := s.sessions.VerifyLoginToken(r.URL.Query().Get("token"))
	if err != nil {
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
		return
	}

	token, err := s.sessions.Issue(email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	http.SetCookie(w, s.sessions.Cookie(token))
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}
