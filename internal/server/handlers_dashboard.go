package server

import (
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// handleDashboard reports row counts for the admin landing page.
// Count failures degrade to zero rather than failing the page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var experiences, skills, faqs int

	var g errgroup.Group
	g.Go(func() (err error) {
		experiences, err = s.store.CountExperiences(ctx)
		return err
	})
	g.Go(func() (err error) {
		skills, err = s.store.CountSkills(ctx)
		return err
	})
	g.Go(func() (err error) {
		faqs, err = s.store.CountFaqResponses(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("dashboard: partial stats: %v", err)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"stats": map[string]int{
			"experiences": experiences,
			"skills":      skills,
			"faqs":        faqs,
		},
	})
}

// handleListWeaknesses serves the read-only weaknesses list
func (s *Server) handleListWeaknesses(w http.ResponseWriter, r *http.Request) {
	weaknesses, err := s.store.ListWeaknesses(r.Context())
	if err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"weaknesses": weaknesses,
		"count":      len(weaknesses),
	})
}

// handleListValuesCulture serves the read-only values/culture list
func (s *Server) handleListValuesCulture(w http.ResponseWriter, r *http.Request) {
	values, err := s.store.ListValuesCulture(r.Context())
	if err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"values_culture": values,
		"count":          len(values),
	})
}
