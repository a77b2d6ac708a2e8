package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Team-NekoNyan/inkprov/internal/auth"
	"github.com/Team-NekoNyan/inkprov/internal/domain/profile"
	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/Team-NekoNyan/inkprov/internal/domain/reaction"
	"github.com/Team-NekoNyan/inkprov/internal/domain/snippet"
	"github.com/Team-NekoNyan/inkprov/internal/domain/writing"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError translates domain errors to HTTP statuses. Unrecognized
// errors become opaque 500s; the real cause goes to the log, not the
// client.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, writing.ErrProjectNotFound),
		errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, snippet.ErrProjectNotFound),
		errors.Is(err, reaction.ErrProjectNotFound),
		errors.Is(err, profile.ErrProfileNotFound):
		status = http.StatusNotFound
		message = err.Error()

	case errors.Is(err, writing.ErrProjectLocked),
		errors.Is(err, writing.ErrProjectCompleted),
		errors.Is(err, writing.ErrProjectFull),
		errors.Is(err, reaction.ErrStoryNotCompleted),
		errors.Is(err, auth.ErrEmailTaken),
		errors.Is(err, profile.ErrAlreadyRedeemed):
		status = http.StatusConflict
		message = err.Error()

	case errors.Is(err, snippet.ErrWordCountOutOfRange),
		errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, profile.ErrInvalidInput),
		errors.Is(err, profile.ErrUnknownCode),
		errors.Is(err, reaction.ErrInvalidReaction),
		errors.Is(err, auth.ErrInvalidInput):
		status = http.StatusBadRequest
		message = err.Error()

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = err.Error()

	case errors.Is(err, project.ErrNotCreator):
		status = http.StatusForbidden
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	respondJSON(w, status, errorResponse{Error: message})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
