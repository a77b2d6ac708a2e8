package writing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/domain/contributor"
	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/Team-NekoNyan/inkprov/internal/domain/snippet"
	"github.com/Team-NekoNyan/inkprov/internal/metrics"
	"github.com/Team-NekoNyan/inkprov/internal/repository"
	"github.com/google/uuid"
)

// Service implements the turn-taking protocol: acquire the writer lock,
// submit the next snippet, release the lock, and resynchronize view
// state from the store. All writes are independent single-row updates;
// the lock is advisory and is the only cross-client ordering guarantee.
type Service struct {
	projects     ProjectRepository
	snippets     SnippetRepository
	contributors ContributorRepository
	stats        StatsRepository
	logger       *slog.Logger
}

// NewService creates a new writing service.
func NewService(
	projects ProjectRepository,
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

// Acquire claims the single writer slot for userID. Acquiring a lock
// the caller already holds succeeds. The final write is guarded at the
// store, so two clients racing on an unlocked project cannot both win;
// the loser gets ErrProjectLocked.
func (s *Service) Acquire(ctx context.Context, projectID, userID string) error {
	proj, err := s.getProject(ctx, projectID)
	if err != nil {
		return err
	}

	if proj.IsCompleted {
		return ErrProjectCompleted
	}

	count, err := s.snippets.CountByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("counting snippets: %w", err)
	}
	if count >= proj.EffectiveMaxSnippets() {
		return ErrProjectFull
	}

	if proj.IsLocked && proj.LockedBy != nil {
		if *proj.LockedBy == userID {
			return nil
		}
		metrics.LockConflicts.Inc()
		return ErrProjectLocked
	}

	if err := s.projects.AcquireLock(ctx, projectID, userID); err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			// Lost the race to another acquirer between the read and
			// the conditional write.
			metrics.LockConflicts.Inc()
			return ErrProjectLocked
		case errors.Is(err, repository.ErrNotFound):
			return ErrProjectNotFound
		default:
			return fmt.Errorf("acquiring lock: %w", err)
		}
	}

	metrics.LockAcquisitions.Inc()
	s.logger.Debug("writer lock acquired", "project_id", projectID, "user_id", userID)
	return nil
}

// Release clears the writer lock if userID holds it. Releasing a lock
// held by someone else, or no lock at all, is a no-op. Idempotent.
func (s *Service) Release(ctx context.Context, projectID, userID string) error {
	if err := s.projects.ReleaseLock(ctx, projectID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("releasing lock: %w", err)
	}
	s.logger.Debug("writer lock released", "project_id", projectID, "user_id", userID)
	return nil
}

// Submit validates and persists the next snippet, upserts the caller's
// contributor row, maintains the denormalized contributor count, and
// releases the lock (or completes the project at the snippet cap).
// After the snippet insert, any failure still attempts to clear the
// lock before surfacing, so a failed submission never strands the
// project locked by this user.
func (s *Service) Submit(ctx context.Context, projectID, userID, content string) (*SubmitResult, error) {
	if err := snippet.ValidateWordCount(content); err != nil {
		return nil, err
	}

	proj, err := s.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	count, err := s.snippets.CountByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("counting snippets: %w", err)
	}

	// Not atomic with the count read. The writer lock is the sole
	// ordering guarantee; a bypassed or stale lock can produce
	// duplicate sequence numbers.
	now := time.Now()
	snip := &snippet.Snippet{
		ID:             uuid.NewString(),
		ProjectID:      projectID,
		CreatorID:      userID,
		Content:        content,
		WordCount:      snippet.CountWords(content),
		SequenceNumber: count + 1,
		CreatedAt:      now,
	}
	if err := s.snippets.Insert(ctx, snip); err != nil {
		s.unlock(ctx, projectID, userID)
		return nil, fmt.Errorf("inserting snippet: %w", err)
	}

	s.upsertContributor(ctx, proj.CreatorID, projectID, userID, now)

	newCount := count + 1
	completed := newCount >= proj.EffectiveMaxSnippets()
	if completed {
		if err := s.projects.MarkCompleted(ctx, projectID); err != nil {
			s.unlock(ctx, projectID, userID)
			return nil, fmt.Errorf("marking project completed: %w", err)
		}
		metrics.ProjectsCompleted.Inc()
	} else {
		if err := s.projects.ReleaseLock(ctx, projectID, userID); err != nil {
			return nil, fmt.Errorf("releasing lock: %w", err)
		}
	}

	if err := s.stats.IncrementCounter(ctx, userID, "snippets_written"); err != nil {
		s.logger.Warn("failed to bump snippets_written stat", "user_id", userID, "error", err)
	}

	metrics.SnippetsSubmitted.Inc()

	snippets, err := s.snippets.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing snippets: %w", err)
	}
	roster, err := s.contributors.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing contributors: %w", err)
	}

	return &SubmitResult{
		Snippet:      snip,
		Snippets:     snippets,
		Contributors: roster,
		Completed:    completed,
	}, nil
}

// Refresh re-reads the project, ordered snippets, and roster, and
// recomputes the caller's view flags. Pure read; safe to call at any
// time, including while another user holds the lock or after
// completion. userID may be empty for anonymous readers.
func (s *Service) Refresh(ctx context.Context, projectID, userID string) (*SessionState, error) {
	proj, err := s.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	snippets, err := s.snippets.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing snippets: %w", err)
	}

	roster, err := s.contributors.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing contributors: %w", err)
	}

	state := &SessionState{
		Project:      proj,
		Snippets:     snippets,
		Contributors: roster,
		SnippetCount: len(snippets),
		MaxSnippets:  proj.EffectiveMaxSnippets(),
		IsLocked:     proj.IsLocked,
		LockedBy:     proj.LockedBy,
	}

	if userID != "" {
		state.IsCurrentlyWriting = proj.LockedBy != nil && *proj.LockedBy == userID
		for _, member := range roster {
			if member.UserID == userID {
				state.IsContributor = true
				state.IsProjectCreator = member.IsProjectCreator
				break
			}
		}
		if proj.CreatorID == userID {
			state.IsProjectCreator = true
		}
	}

	return state, nil
}

func (s *Service) getProject(ctx context.Context, projectID string) (*project.Project, error) {
	proj, err := s.projects.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// upsertContributor records the caller's membership after a snippet
// landed. Failures here are logged and swallowed: the snippet is
// already the story's source of truth and the roster is repairable.
func (s *Service) upsertContributor(ctx context.Context, creatorID, projectID, userID string, at time.Time) {
	existing, err := s.contributors.Get(ctx, projectID, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("failed to look up contributor", "project_id", projectID, "user_id", userID, "error", err)
		return
	}

	if existing != nil {
		if err := s.contributors.MarkContributed(ctx, projectID, userID, at); err != nil {
			s.logger.Error("failed to update contributor", "project_id", projectID, "user_id", userID, "error", err)
		}
		return
	}

	member := &contributor.Contributor{
		ID:                 uuid.NewString(),
		ProjectID:          projectID,
		UserID:             userID,
		IsProjectCreator:   creatorID == userID,
		MadeContribution:   true,
		JoinedAt:           at,
		LastContributionAt: &at,
	}
	if err := s.contributors.Insert(ctx, member); err != nil {
		s.logger.Error("failed to insert contributor", "project_id", projectID, "user_id", userID, "error", err)
		return
	}

	// The stored counter is a single arithmetic update at the store,
	// but it can still drift from the live roster under concurrent
	// writers. Accepted inconsistency; the roster is authoritative.
	if err := s.projects.IncrementContributorCount(ctx, projectID); err != nil {
		s.logger.Warn("failed to bump contributor count", "project_id", projectID, "error", err)
	}
}

// unlock is the compensating release used when a submission fails
// partway. Best effort; the error is logged, not surfaced.
func (s *Service) unlock(ctx context.Context, projectID, userID string) {
	if err := s.projects.ReleaseLock(ctx, projectID, userID); err != nil {
		s.logger.Error("failed to release lock after failed submission",
			"project_id", projectID, "user_id", userID, "error", err)
	}
}
