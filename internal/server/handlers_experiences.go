package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-site/internal/db"
	"github.com/jonathan/resume-site/internal/forms"
	"github.com/jonathan/resume-site/internal/ordering"
)

// sentinelNewID in a route parameter selects insert mode for save/load
const sentinelNewID = "new"

const experiencesListPath = "/admin/experiences"

func (s *Server) handleListExperiencesAdmin(w http.ResponseWriter, r *http.Request) {
	experiences, err := s.store.ListExperiences(r.Context())
	if err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if experiences == nil {
		experiences = []db.Experience{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"experiences": experiences})
}

func (s *Server) handleGetExperienceAdmin(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	if idStr == sentinelNewID {
		s.jsonResponse(w, http.StatusOK, map[string]any{"experience": nil})
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid experience ID")
		return
	}

	experience, err := s.store.GetExperience(r.Context(), id)
	if err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"experience": experience})
}

// handleSaveExperience inserts when the route identity is "new", otherwise
// updates the addressed row. Success redirects back to the list page.
func (s *Server) handleSaveExperience(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.formFail(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	experience := experienceFromForm(r)

	idStr := r.PathValue("id")
	if idStr == sentinelNewID {
		if _, err := s.store.InsertExperience(r.Context(), experience); err != nil {
			s.formFail(w, http.StatusInternalServerError, err.Error())
			return
		}
	} else {
		id, err := uuid.Parse(idStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid experience ID")
			return
		}
		experience.ID = id
		if err := s.store.UpdateExperience(r.Context(), experience); err != nil {
			s.formFail(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	http.Redirect(w, r, experiencesListPath, http.StatusSeeOther)
}

// experienceFromForm coerces submitted fields into a row. A checked
// current-position flag forces the end date to absent no matter what was
// submitted alongside it.
func experienceFromForm(r *http.Request) *db.Experience {
	isCurrent := forms.Checkbox(r.PostFormValue("is_current"))

	var endDate *string
	if !isCurrent {
		endDate = forms.StringPtr(r.PostFormValue("end_date"))
	}

	return &db.Experience{
		CompanyName:      r.PostFormValue("company_name"),
		Title:            r.PostFormValue("title"),
		TitleProgression: forms.StringPtr(r.PostFormValue("title_progression")),
		Team:             forms.StringPtr(r.PostFormValue("team")),
		StartDate:        r.PostFormValue("start_date"),
		EndDate:          endDate,
		IsCurrent:        isCurrent,
		BulletPoints:     forms.Values(r.PostForm, "bullet_points"),
		DisplayOrder:     ordering.ParseOrder(r.PostFormValue("display_order")),
		OnHeroSection:    forms.Checkbox(r.PostFormValue("on_hero_section")),
	}
}

// handleDeleteExperience removes a row from its detail page and navigates
// back to the list
func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid experience ID")
		return
	}

	if err := s.store.DeleteExperience(r.Context(), id); err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	http.Redirect(w, r, experiencesListPath, http.StatusSeeOther)
}

// handleDeleteExperienceFromList removes a row in place; the list page
// drops it client-side, so a success flag replaces the redirect
func (s *Server) handleDeleteExperienceFromList(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.formFail(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	id, err := uuid.Parse(r.PostFormValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid experience ID")
		return
	}

	if err := s.store.DeleteExperience(r.Context(), id); err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.successResponse(w)
}

func (s *Server) handleReorderExperiences(w http.ResponseWriter, r *http.Request) {
	s.handleReorder(w, r, s.experienceOrder)
}

// handleReorder applies a JSON-encoded batch of {id, order} pairs submitted
// as the "updates" form field
func (s *Server) handleReorder(w http.ResponseWriter, r *http.Request, svc *ordering.Service) {
	if err := r.ParseForm(); err != nil {
		s.formFail(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	updates, err := ordering.ParseUpdates([]byte(r.PostFormValue("updates")))
	if err != nil {
		s.formFail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := svc.Reorder(r.Context(), updates); err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.successResponse(w)
}
