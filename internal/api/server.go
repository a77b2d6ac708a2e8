// Package api exposes the application over HTTP with JSON bodies.
package api

import (
	"log/slog"
	"net/http"

	"github.com/Team-NekoNyan/inkprov/internal/auth"
	"github.com/Team-NekoNyan/inkprov/internal/domain/contributor"
	"github.com/Team-NekoNyan/inkprov/internal/domain/profile"
	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/Team-NekoNyan/inkprov/internal/domain/reaction"
	"github.com/Team-NekoNyan/inkprov/internal/domain/snippet"
	"github.com/Team-NekoNyan/inkprov/internal/domain/writing"
	"github.com/Team-NekoNyan/inkprov/internal/metrics"
	"github.com/gorilla/mux"
)

// Server bundles the domain services behind the HTTP surface.
type Server struct {
	auth         *auth.Service
	projects     *project.Service
	writing      *writing.Service
	snippets     *snippet.Service
	contributors *contributor.Service
	reactions    *reaction.Service
	profiles     *profile.Service
	logger       *slog.Logger
}

// NewServer creates a new API server.
func NewServer(
	authSvc *auth.Service,
	projects *project.Service,
	writingSvc *writing.Service,
	snippets *snippet.Service,
	contributors *contributor.Service,
	reactions *reaction.Service,
	profiles *profile.Service,
	logger *slog.Logger,
) *Server {
	return &Server{
		auth:         authSvc,
		projects:     projects,
		writing:      writingSvc,
		snippets:     snippets,
		contributors: contributors,
		reactions:    reactions,
		profiles:     profiles,
		logger:       logger,
	}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", s.handleRegister).Methods("POST")
	api.HandleFunc("/auth/login", s.handleLogin).Methods("POST")
	api.Handle("/auth/me", s.requireUser(s.handleMe)).Methods("GET")

	api.HandleFunc("/projects", s.handleListOpen).Methods("GET")
	api.HandleFunc("/projects/completed", s.handleListCompleted).Methods("GET")
	api.Handle("/projects/mine", s.requireUser(s.handleListMine)).Methods("GET")
	api.Handle("/projects", s.requireUser(s.handleCreateProject)).Methods("POST")
	api.HandleFunc("/projects/{id}", s.handleGetProject).Methods("GET")
	api.Handle("/projects/{id}", s.requireUser(s.handleDeleteProject)).Methods("DELETE")

	// Turn-taking protocol.
	api.Handle("/projects/{id}/lock", s.requireUser(s.handleAcquireLock)).Methods("POST")
	api.Handle("/projects/{id}/lock", s.requireUser(s.handleReleaseLock)).Methods("DELETE")
	api.Handle("/projects/{id}/snippets", s.requireUser(s.handleSubmitSnippet)).Methods("POST")
	api.HandleFunc("/projects/{id}/session", s.withOptionalUser(s.handleSession)).Methods("GET")
	api.HandleFunc("/projects/{id}/story", s.handleStory).Methods("GET")
	api.HandleFunc("/projects/{id}/contributors", s.withOptionalUser(s.handleGetContributors)).Methods("GET")

	api.Handle("/projects/{id}/reactions", s.requireUser(s.handleReact)).Methods("POST")
	api.HandleFunc("/projects/{id}/reactions", s.withOptionalUser(s.handleGetReactions)).Methods("GET")

	api.Handle("/profile", s.requireUser(s.handleGetProfile)).Methods("GET")
	api.Handle("/profile", s.requireUser(s.handleUpdateProfile)).Methods("PUT")
	api.Handle("/profile/stats", s.requireUser(s.handleGetStats)).Methods("GET")
	api.Handle("/rewards/redeem", s.requireUser(s.handleRedeem)).Methods("POST")

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
