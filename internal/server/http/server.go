// Package http exposes the authoritative record store over REST/JSON.
package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mindfulhq/mindful/internal/common"
	"github.com/mindfulhq/mindful/internal/logging"
	"github.com/mindfulhq/mindful/internal/models"
	"github.com/mindfulhq/mindful/internal/server/repositories/reminders"
	"github.com/mindfulhq/mindful/internal/server/repositories/users"
)

var apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mindful_api_requests_total",
	Help: "Number of /api requests served, by method.",
}, []string{"method"})

type Server struct {
	logger    logging.Logger
	users     users.Repository
	reminders reminders.Repository
}

func NewServer(l logging.Logger, u users.Repository, r reminders.Repository) *Server {
	return &Server{
		logger:    l.With("module", "http_server"),
		users:     u,
		reminders: r,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(countRequests)

		api.Get("/users", s.handleListUsers)
		api.Post("/users", s.handleCreateUser)
		api.Delete("/users/{id}", s.handleDeleteUser)

		api.Get("/reminders", s.handleListReminders)
		api.Get("/reminders/all", s.handleListAllReminders)
		api.Post("/reminders", s.handleCreateReminder)
		api.Put("/reminders/{id}", s.handleUpdateReminder)
		api.Delete("/reminders/{id}", s.handleDeleteReminder)

		// JSON fallback for missing API routes
		api.NotFound(s.handleNotFound)
		api.MethodNotAllowed(s.handleNotFound)
	})

	return r
}

func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiRequests.WithLabelValues(r.Method).Inc()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, fmt.Sprintf("%s %s not found", r.Method, r.URL.Path))
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.users.CreateOrIgnore(r.Context(), u); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == common.AdminID {
		writeError(w, http.StatusForbidden, "Root admin locked")
		return
	}
	if err := s.users.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w)
}

func (s *Server) handleListReminders(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId required")
		return
	}
	list, err := s.reminders.ListByUser(r.Context(), userID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleListAllReminders(w http.ResponseWriter, r *http.Request) {
	list, err := s.reminders.ListAll(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateReminder(w http.ResponseWriter, r *http.Request) {
	var rec models.Reminder
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.reminders.Create(r.Context(), rec); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w)
}

func (s *Server) handleUpdateReminder(w http.ResponseWriter, r *http.Request) {
	var rec models.Reminder
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rec.ID = chi.URLParam(r, "id")
	if err := s.reminders.Update(r.Context(), rec); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w)
}

func (s *Server) handleDeleteReminder(w http.ResponseWriter, r *http.Request) {
	if err := s.reminders.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
