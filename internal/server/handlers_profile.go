package server

import (
	"net/http"

	"github.com/jonathan/resume-site/internal/db"
	"github.com/jonathan/resume-site/internal/forms"
)

func (s *Server) handleGetProfileAdmin(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.GetProfile(r.Context())
	if err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"profile": profile})
}

// handleSaveProfile updates the single profile row. There is no insert
// path: the row always exists and its identity never varies, so any id the
// client might submit is ignored.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.formFail(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	profile := &db.Profile{
		Name:                r.PostFormValue("name"),
		ShortName:           r.PostFormValue("short_name"),
		Tagline:             r.PostFormValue("tagline"),
		Title:               r.PostFormValue("title"),
		Subtitle:            forms.StringPtr(r.PostFormValue("subtitle")),
		TargetTitles:        forms.Values(r.PostForm, "target_titles"),
		TargetCompanyStages: forms.Values(r.PostForm, "target_company_stages"),
		Location:            forms.StringPtr(r.PostFormValue("location")),
		RemotePreference:    forms.StringPtr(r.PostFormValue("remote_preference")),
		GithubURL:           forms.StringPtr(r.PostFormValue("github_url")),
		LinkedinURL:         forms.StringPtr(r.PostFormValue("linkedin_url")),
		TwitterURL:          forms.StringPtr(r.PostFormValue("twitter_url")),
	}

	if err := s.store.UpdateProfile(r.Context(), profile); err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.successResponse(w)
}
