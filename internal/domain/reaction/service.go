package reaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/repository"
	"github.com/google/uuid"
)

// Service handles reader reactions on finished stories.
type Service struct {
	reactions Repository
	projects  ProjectRepository
	logger    *slog.Logger
}

// NewService creates a new reaction service.
func NewService(reactions Repository, projects ProjectRepository, logger *slog.Logger) *Service {
	return &Service{reactions: reactions, projects: projects, logger: logger}
}

// React records userID's reaction to a completed story, replacing any
// previous reaction by the same user.
func (s *Service) React(ctx context.Context, projectID, userID string, t Type) (*Reaction, error) {
	if !t.Valid() {
		return nil, ErrInvalidReaction
	}

	proj, err := s.projects.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	if !proj.IsCompleted {
		return nil, ErrStoryNotCompleted
	}

	r := &Reaction{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		UserID:    userID,
		Type:      t,
		CreatedAt: time.Now(),
	}
	if err := s.reactions.Upsert(ctx, r); err != nil {
		return nil, fmt.Errorf("saving reaction: %w", err)
	}
	return r, nil
}

// Get returns the user's reaction to a story, or nil if none exists.
func (s *Service) Get(ctx context.Context, projectID, userID string) (*Reaction, error) {
	r, err := s.reactions.Get(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting reaction: %w", err)
	}
	return r, nil
}

// Counts returns per-type reaction tallies for a story.
func (s *Service) Counts(ctx context.Context, projectID string) (map[Type]int, error) {
	counts, err := s.reactions.Counts(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("counting reactions: %w", err)
	}
	return counts, nil
}
