package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/domain/contributor"
	"github.com/Team-NekoNyan/inkprov/internal/domain/snippet"
	"github.com/Team-NekoNyan/inkprov/internal/metrics"
	"github.com/Team-NekoNyan/inkprov/internal/repository"
	"github.com/google/uuid"
)

// Service handles project lifecycle operations.
type Service struct {
	projects     Repository
	snippets     SnippetRepository
	contributors ContributorRepository
	stats        StatsRepository
	logger       *slog.Logger
}

// NewService creates a new project service.
func NewService(
	projects Repository,
	snippets SnippetRepository,
	contributors ContributorRepository,
	stats StatsRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		projects:     projects,
		snippets:     snippets,
		contributors: contributors,
		stats:        stats,
		logger:       logger,
	}
}

// CreateRequest defines project creation inputs. OpeningContent is the
// creator's first snippet and is subject to the usual word bounds.
type CreateRequest struct {
	Title           string
	Description     string
	Genre           string
	IsPublic        bool
	IsMatureContent bool
	MaxSnippets     int
	OpeningContent  string
}

// Create creates a new writing session with its opening snippet and the
// creator's contributor row. The three inserts are independent writes;
// the project row is the source of truth and later writes are
// best-effort (logged on failure, not rolled back).
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(req.Genre) == "" {
		return nil, ErrInvalidInput
	}
	if len(req.Description) > MaxDescriptionLength {
		return nil, ErrInvalidInput
	}
	if err := snippet.ValidateWordCount(req.OpeningContent); err != nil {
		return nil, err
	}

	maxSnippets := req.MaxSnippets
	if maxSnippets <= 0 {
		maxSnippets = SnippetCap
	}

	now := time.Now()
	proj := &Project{
		ID:                       uuid.NewString(),
		Title:                    req.Title,
		Description:              req.Description,
		Genre:                    req.Genre,
		IsPublic:                 req.IsPublic,
		IsMatureContent:          req.IsMatureContent,
		CreatorID:                userID,
		MaxSnippets:              maxSnippets,
		CurrentContributorsCount: 1,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	if err := s.projects.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	opening := &snippet.Snippet{
		ID:             uuid.NewString(),
		ProjectID:      proj.ID,
		CreatorID:      userID,
		Content:        req.OpeningContent,
		WordCount:      snippet.CountWords(req.OpeningContent),
		SequenceNumber: 1,
		CreatedAt:      now,
	}
	if err := s.snippets.Insert(ctx, opening); err != nil {
		return nil, fmt.Errorf("inserting opening snippet: %w", err)
	}

	creator := &contributor.Contributor{
		ID:                 uuid.NewString(),
		ProjectID:          proj.ID,
		UserID:             userID,
		IsProjectCreator:   true,
		MadeContribution:   true,
		JoinedAt:           now,
		LastContributionAt: &now,
	}
	if err := s.contributors.Insert(ctx, creator); err != nil {
		s.logger.Error("failed to insert creator contributor row",
			"project_id", proj.ID, "user_id", userID, "error", err)
	}

	if err := s.stats.IncrementCounter(ctx, userID, "projects_created"); err != nil {
		s.logger.Warn("failed to bump projects_created stat",
			"user_id", userID, "error", err)
	}

	metrics.ProjectsCreated.Inc()
	return proj, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.projects.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// ListOpen returns public sessions still accepting contributions.
func (s *Service) ListOpen(ctx context.Context) ([]Summary, error) {
	return s.projects.ListOpen(ctx)
}

// ListCompleted returns public finished stories for the reading view.
func (s *Service) ListCompleted(ctx context.Context) ([]Summary, error) {
	return s.projects.ListCompleted(ctx)
}

// ListByUser returns sessions the user created or contributed to.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Summary, error) {
	return s.projects.ListByUser(ctx, userID)
}

// Delete removes a project. Only the creator may delete.
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	proj, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if proj.CreatorID != userID {
		return ErrNotCreator
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}
