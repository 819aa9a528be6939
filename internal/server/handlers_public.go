package server

import (
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-site/internal/db"
	"github.com/jonathan/resume-site/internal/view"
)

// handlePage serves the aggregate payload for the public landing page.
// The four collections are fetched concurrently; a failed fetch degrades to
// an empty collection (or null profile) instead of failing the page.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		profile     *db.Profile
		experiences []db.Experience
		skills      []db.Skill
		faqs        []db.FaqResponse
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		profile, err = s.store.GetProfile(ctx)
		return err
	})
	g.Go(func() (err error) {
		experiences, err = s.store.ListExperiences(ctx)
		return err
	})
	g.Go(func() (err error) {
		skills, err = s.store.ListSkills(ctx)
		return err
	})
	g.Go(func() (err error) {
		faqs, err = s.store.ListFaqResponses(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		// Render whatever did load; the mapper tolerates missing data.
		log.Printf("public page: partial load: %v", err)
	}

	page := view.Page{
		Profile:         view.MapProfile(profile),
		Experiences:     view.MapExperiences(experiences),
		Skills:          view.MapSkills(skills),
		CommonQuestions: view.MapQuestions(faqs),
	}
	s.jsonResponse(w, http.StatusOK, page)
}

// handleProfileAPI serves the raw profile row
func (s *Server) handleProfileAPI(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.GetProfile(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "profile not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleTestDB probes database connectivity
func (s *Server) handleTestDB(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.CountProfiles(r.Context())
	if err != nil {
		s.jsonResponse(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "database connected",
		"count":   count,
	})
}
