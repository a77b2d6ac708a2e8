package api

import (
	"net/http"

	"github.com/Team-NekoNyan/inkprov/internal/auth"
	"github.com/Team-NekoNyan/inkprov/internal/domain/profile"
	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/Team-NekoNyan/inkprov/internal/domain/reaction"
	"github.com/gorilla/mux"
)

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	ProfileName string `json:"profile_name"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	user, err := s.auth.Register(r.Context(), auth.RegisterRequest{
		Email:       req.Email,
		Password:    req.Password,
		ProfileName: req.ProfileName,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	token, err := s.auth.IssueToken(user.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"user": user, "token": token})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	token, user, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"user": user, "token": token})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.auth.CurrentUser(r.Context(), bearerToken(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleListOpen(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.projects.ListOpen(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleListCompleted(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.projects.ListCompleted(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleListMine(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.projects.ListByUser(r.Context(), userID(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summaries)
}

type createProjectRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Genre           string `json:"project_genre"`
	IsPublic        bool   `json:"is_public"`
	IsMatureContent bool   `json:"is_mature_content"`
	MaxSnippets     int    `json:"max_snippets"`
	OpeningContent  string `json:"opening_content"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	proj, err := s.projects.Create(r.Context(), userID(r), project.CreateRequest{
		Title:           req.Title,
		Description:     req.Description,
		Genre:           req.Genre,
		IsPublic:        req.IsPublic,
		IsMatureContent: req.IsMatureContent,
		MaxSnippets:     req.MaxSnippets,
		OpeningContent:  req.OpeningContent,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, proj)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.projects.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, proj)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.projects.Delete(r.Context(), mux.Vars(r)["id"], userID(r)); err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleAcquireLock(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]
	if err := s.writing.Acquire(r.Context(), projectID, userID(r)); err != nil {
		s.respondError(w, r, err)
		return
	}
	state, err := s.writing.Refresh(r.Context(), projectID, userID(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleReleaseLock(w http.ResponseWriter, r *http.Request) {
	if err := s.writing.Release(r.Context(), mux.Vars(r)["id"], userID(r)); err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type submitSnippetRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleSubmitSnippet(w http.ResponseWriter, r *http.Request) {
	var req submitSnippetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := s.writing.Submit(r.Context(), mux.Vars(r)["id"], userID(r), req.Content)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	state, err := s.writing.Refresh(r.Context(), mux.Vars(r)["id"], userID(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]
	if _, err := s.projects.Get(r.Context(), projectID); err != nil {
		s.respondError(w, r, err)
		return
	}
	story, err := s.snippets.Story(r.Context(), projectID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"story": story})
}

func (s *Server) handleGetContributors(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]
	if _, err := s.projects.Get(r.Context(), projectID); err != nil {
		s.respondError(w, r, err)
		return
	}
	roster, err := s.contributors.Roster(r.Context(), projectID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	body := map[string]any{"contributors": roster}
	if id := userID(r); id != "" {
		member, err := s.contributors.IsContributor(r.Context(), projectID, id)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		body["is_contributor"] = member
	}
	respondJSON(w, http.StatusOK, body)
}

type reactRequest struct {
	Reaction string `json:"reaction"`
}

func (s *Server) handleReact(w http.ResponseWriter, r *http.Request) {
	var req reactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := s.reactions.React(r.Context(), mux.Vars(r)["id"], userID(r), reaction.Type(req.Reaction))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

func (s *Server) handleGetReactions(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]
	counts, err := s.reactions.Counts(r.Context(), projectID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	body := map[string]any{"counts": counts}
	if id := userID(r); id != "" {
		mine, err := s.reactions.Get(r.Context(), projectID, id)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		if mine != nil {
			body["mine"] = mine.Type
		}
	}
	respondJSON(w, http.StatusOK, body)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.Get(r.Context(), userID(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

type updateProfileRequest struct {
	ProfileName          *string `json:"user_profile_name"`
	Bio                  *string `json:"user_profile_bio"`
	AvatarURL            *string `json:"avatar_url"`
	MatureContentEnabled *bool   `json:"user_profile_mature_enabled"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	p, err := s.profiles.Update(r.Context(), userID(r), profile.UpdateRequest{
		ProfileName:          req.ProfileName,
		Bio:                  req.Bio,
		AvatarURL:            req.AvatarURL,
		MatureContentEnabled: req.MatureContentEnabled,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.profiles.GetStats(r.Context(), userID(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

type redeemRequest struct {
	Code string `json:"code"`
}

func (s *Server) handleRedeem(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	stats, err := s.profiles.Redeem(r.Context(), userID(r), req.Code)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
