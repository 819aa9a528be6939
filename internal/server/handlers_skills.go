package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-site/internal/db"
	"github.com/jonathan/resume-site/internal/forms"
	"github.com/jonathan/resume-site/internal/ordering"
)

const skillsListPath = "/admin/skills"

// handleListSkillsAdmin groups full skill rows by category for the admin
// list page (unlike the public view, which carries names only)
func (s *Server) handleListSkillsAdmin(w http.ResponseWriter, r *http.Request) {
	skills, err := s.store.ListSkills(r.Context())
	if err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}

	grouped := map[string][]db.Skill{
		db.CategoryStrong:   {},
		db.CategoryModerate: {},
		db.CategoryGap:      {},
	}
	for _, skill := range skills {
		if _, ok := grouped[skill.Category]; ok {
			grouped[skill.Category] = append(grouped[skill.Category], skill)
		}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": grouped})
}

func (s *Server) handleGetSkillAdmin(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	if idStr == sentinelNewID {
		s.jsonResponse(w, http.StatusOK, map[string]any{"skill": nil})
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	skill, err := s.store.GetSkill(r.Context(), id)
	if err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skill": skill})
}

func (s *Server) handleSaveSkill(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.formFail(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	skill := skillFromForm(r)

	idStr := r.PathValue("id")
	if idStr == sentinelNewID {
		if _, err := s.store.InsertSkill(r.Context(), skill); err != nil {
			s.formFail(w, http.StatusInternalServerError, err.Error())
			return
		}
	} else {
		id, err := uuid.Parse(idStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid skill ID")
			return
		}
		skill.ID = id
		if err := s.store.UpdateSkill(r.Context(), skill); err != nil {
			s.formFail(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	http.Redirect(w, r, skillsListPath, http.StatusSeeOther)
}

// skillFromForm coerces submitted fields into a row. A checked in-use flag
// forces last-used to absent; rating and years fall back to null on
// non-numeric input.
func skillFromForm(r *http.Request) *db.Skill {
	inUse := forms.Checkbox(r.PostFormValue("in_use"))

	var lastUsed *string
	if !inUse {
		lastUsed = forms.StringPtr(r.PostFormValue("last_used"))
	}

	return &db.Skill{
		Name:            r.PostFormValue("name"),
		Category:        r.PostFormValue("category"),
		SelfRating:      forms.IntPtr(r.PostFormValue("self_rating")),
		Evidence:        forms.StringPtr(r.PostFormValue("evidence")),
		HonestNotes:     forms.StringPtr(r.PostFormValue("honest_notes")),
		YearsExperience: forms.FloatPtr(r.PostFormValue("years_experience")),
		InUse:           inUse,
		LastUsed:        lastUsed,
		DisplayOrder:    ordering.ParseOrder(r.PostFormValue("display_order")),
	}
}

func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	if err := s.store.DeleteSkill(r.Context(), id); err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	http.Redirect(w, r, skillsListPath, http.StatusSeeOther)
}

func (s *Server) handleDeleteSkillFromList(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.formFail(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	id, err := uuid.Parse(r.PostFormValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	if err := s.store.DeleteSkill(r.Context(), id); err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.successResponse(w)
}

func (s *Server) handleReorderSkills(w http.ResponseWriter, r *http.Request) {
	s.handleReorder(w, r, s.skillOrder)
}
