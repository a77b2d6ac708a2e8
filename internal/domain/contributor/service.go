package contributor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Team-NekoNyan/inkprov/internal/repository"
)

// Service handles contributor roster reads.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new contributor service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Roster returns a project's contributors sorted by join time.
func (s *Service) Roster(ctx context.Context, projectID string) ([]Contributor, error) {
	roster, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing contributors: %w", err)
	}
	return roster, nil
}

// IsContributor reports whether the user has a membership row.
// Absence is "not yet a contributor", not an error.
func (s *Service) IsContributor(ctx context.Context, projectID, userID string) (bool, error) {
	_, err := s.repo.Get(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("checking membership: %w", err)
	}
	return true, nil
}
