package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-site/internal/db"
	"github.com/jonathan/resume-site/internal/forms"
	"github.com/jonathan/resume-site/internal/ordering"
)

const faqListPath = "/admin/faq"

func (s *Server) handleListFaqAdmin(w http.ResponseWriter, r *http.Request) {
	faqs, err := s.store.ListFaqResponses(r.Context())
	if err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if faqs == nil {
		faqs = []db.FaqResponse{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"faqs": faqs})
}

func (s *Server) handleGetFaqAdmin(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	if idStr == sentinelNewID {
		s.jsonResponse(w, http.StatusOK, map[string]any{"faq": nil})
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid FAQ ID")
		return
	}

	faq, err := s.store.GetFaqResponse(r.Context(), id)
	if err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"faq": faq})
}

func (s *Server) handleSaveFaq(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.formFail(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	faq := &db.FaqResponse{
		Question:         r.PostFormValue("question"),
		Answer:           r.PostFormValue("answer"),
		IsCommonQuestion: forms.Checkbox(r.PostFormValue("is_common_question")),
		DisplayOrder:     ordering.ParseOrder(r.PostFormValue("display_order")),
	}

	idStr := r.PathValue("id")
	if idStr == sentinelNewID {
		if _, err := s.store.InsertFaqResponse(r.Context(), faq); err != nil {
			s.formFail(w, http.StatusInternalServerError, err.Error())
			return
		}
	} else {
		id, err := uuid.Parse(idStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid FAQ ID")
			return
		}
		faq.ID = id
		if err := s.store.UpdateFaqResponse(r.Context(), faq); err != nil {
			s.formFail(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	http.Redirect(w, r, faqListPath, http.StatusSeeOther)
}

func (s *Server) handleDeleteFaq(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid FAQ ID")
		return
	}

	if err := s.store.DeleteFaqResponse(r.Context(), id); err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	http.Redirect(w, r, faqListPath, http.StatusSeeOther)
}

func (s *Server) handleDeleteFaqFromList(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.formFail(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	id, err := uuid.Parse(r.PostFormValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid FAQ ID")
		return
	}

	if err := s.store.DeleteFaqResponse(r.Context(), id); err != nil {
		s.formFail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.successResponse(w)
}

func (s *Server) handleReorderFaq(w http.ResponseWriter, r *http.Request) {
	s.handleReorder(w, r, s.faqOrder)
}
