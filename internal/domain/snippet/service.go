package snippet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Team-NekoNyan/inkprov/internal/repository"
)

// Service handles snippet reads for the reading view.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new snippet service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListByProject returns a project's snippets ordered by sequence number.
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]Snippet, error) {
	snippets, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("listing snippets: %w", err)
	}
	return snippets, nil
}

// Story concatenates a project's snippets into the full story text.
func (s *Service) Story(ctx context.Context, projectID string) (string, error) {
	snippets, err := s.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(snippets))
	for _, snip := range snippets {
		parts = append(parts, strings.TrimSpace(snip.Content))
	}
	return strings.Join(parts, "\n\n"), nil
}
