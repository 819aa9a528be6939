// Package server provides the HTTP surface of the resume site: the public
// read endpoint and the admin CRUD panel.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jonathan/resume-site/internal/auth"
	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/db"
	"github.com/jonathan/resume-site/internal/ordering"
)

// loginPath is where unauthenticated admin requests are redirected
const loginPath = "/admin/login"

// Server handles all HTTP traffic
type Server struct {
	httpServer *http.Server
	store      Store
	sessions   *auth.Sessions
	loginLinks *auth.LoginLinks

	experienceOrder *ordering.Service
	skillOrder      *ordering.Service
	faqOrder        *ordering.Service
}

// Config holds server construction parameters
type Config struct {
	Port int
	App  *config.Config
}

// New connects to the database and builds a ready-to-start server
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.App.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sessions := auth.NewSessions(cfg.App.SessionSecret,
		time.Duration(cfg.App.SessionTTLHours)*time.Hour)
	mailer := auth.NewSMTPMailer(cfg.App.SMTP)
	loginLinks := auth.NewLoginLinks(sessions, mailer, cfg.App.BaseURL)

	s := newServer(database, sessions, loginLinks)
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// newServer wires handlers around an already constructed store and auth
// services. Split out from New so tests can inject fakes.
func newServer(store Store, sessions *auth.Sessions, loginLinks *auth.LoginLinks) *Server {
	return &Server{
		store:           store,
		sessions:        sessions,
		loginLinks:      loginLinks,
		experienceOrder: ordering.NewService(store.UpdateExperienceOrder),
		skillOrder:      ordering.NewService(store.UpdateSkillOrder),
		faqOrder:        ordering.NewService(store.UpdateFaqOrder),
	}
}

// Handler builds the route table wrapped in the middleware stack
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Public surface
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/profile", s.handleProfileAPI)
	mux.HandleFunc("GET /api/test-db", s.handleTestDB)
	mux.HandleFunc("GET /auth/callback", s.handleAuthCallback)

	// Admin login (exempt from the session guard)
	mux.HandleFunc("GET /admin/login", s.handleLoginForm)
	mux.HandleFunc("POST /admin/login", s.handleLogin)

	// Admin panel
	mux.HandleFunc("GET /admin/dashboard", s.handleDashboard)
	mux.HandleFunc("GET /admin/profile", s.handleGetProfileAdmin)
	mux.HandleFunc("POST /admin/profile", s.handleSaveProfile)

	mux.HandleFunc("GET /admin/experiences", s.handleListExperiencesAdmin)
	mux.HandleFunc("POST /admin/experiences/delete", s.handleDeleteExperienceFromList)
	mux.HandleFunc("POST /admin/experiences/reorder", s.handleReorderExperiences)
	mux.HandleFunc("GET /admin/experiences/{id}", s.handleGetExperienceAdmin)
	mux.HandleFunc("POST /admin/experiences/{id}/save", s.handleSaveExperience)
	mux.HandleFunc("POST /admin/experiences/{id}/delete", s.handleDeleteExperience)

	mux.HandleFunc("GET /admin/skills", s.handleListSkillsAdmin)
	mux.HandleFunc("POST /admin/skills/delete", s.handleDeleteSkillFromList)
	mux.HandleFunc("POST /admin/skills/reorder", s.handleReorderSkills)
	mux.HandleFunc("GET /admin/skills/{id}", s.handleGetSkillAdmin)
	mux.HandleFunc("POST /admin/skills/{id}/save", s.handleSaveSkill)
	mux.HandleFunc("POST /admin/skills/{id}/delete", s.handleDeleteSkill)

	mux.HandleFunc("GET /admin/faq", s.handleListFaqAdmin)
	mux.HandleFunc("POST /admin/faq/delete", s.handleDeleteFaqFromList)
	mux.HandleFunc("POST /admin/faq/reorder", s.handleReorderFaq)
	mux.HandleFunc("GET /admin/faq/{id}", s.handleGetFaqAdmin)
	mux.HandleFunc("POST /admin/faq/{id}/save", s.handleSaveFaq)
	mux.HandleFunc("POST /admin/faq/{id}/delete", s.handleDeleteFaq)

	mux.HandleFunc("GET /admin/weaknesses", s.handleListWeaknesses)
	mux.HandleFunc("GET /admin/values-culture", s.handleListValuesCulture)

	return s.withLogging(s.withSessionGuard(mux))
}

// Start begins listening and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if database, ok := s.store.(*db.DB); ok {
		database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withSessionGuard redirects unauthenticated admin requests to the login
// page. The login page itself is exempt so the redirect can terminate.
func (s *Server) withSessionGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if strings.HasPrefix(path, "/admin") && !strings.HasPrefix(path, loginPath) {
			if _, err := s.sessions.FromRequest(r); err != nil {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// formFail reports a non-fatal action failure for inline display on the
// originating form
func (s *Server) formFail(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"message": message})
}

// successResponse reports an action success flag without navigation
func (s *Server) successResponse(w http.ResponseWriter) {
	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}
