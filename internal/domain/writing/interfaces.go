package writing

import (
	"context"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/domain/contributor"
	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/Team-NekoNyan/inkprov/internal/domain/snippet"
)

// ProjectRepository provides the conditional lock writes the protocol
// relies on. The store offers filtered single-row updates only; there
// is no multi-row transaction across these calls.
type ProjectRepository interface {
	Get(ctx context.Context, id string) (*project.Project, error)
	// AcquireLock sets the lock fields, guarded at the store by the
	// project being unlocked or already held by userID. A failed guard
	// surfaces as repository.ErrConflict.
	AcquireLock(ctx context.Context, projectID, userID string) error
	// ReleaseLock clears the lock fields, scoped to locked_by = userID.
	// Releasing a lock held by someone else is a no-op.
	ReleaseLock(ctx context.Context, projectID, userID string) error
	// MarkCompleted sets is_completed and clears the lock fields.
	MarkCompleted(ctx context.Context, projectID string) error
	// IncrementContributorCount bumps the denormalized roster counter.
	IncrementContributorCount(ctx context.Context, projectID string) error
}

// SnippetRepository provides snippet persistence for submissions.
type SnippetRepository interface {
	Insert(ctx context.Context, snip *snippet.Snippet) error
	ListByProject(ctx context.Context, projectID string) ([]snippet.Snippet, error)
	CountByProject(ctx context.Context, projectID string) (int, error)
}

// ContributorRepository provides membership upserts for submissions.
type ContributorRepository interface {
	Get(ctx context.Context, projectID, userID string) (*contributor.Contributor, error)
	Insert(ctx context.Context, c *contributor.Contributor) error
	MarkContributed(ctx context.Context, projectID, userID string, at time.Time) error
	ListByProject(ctx context.Context, projectID string) ([]contributor.Contributor, error)
}

// StatsRepository records gamification side effects of submissions.
type StatsRepository interface {
	IncrementCounter(ctx context.Context, userID, stat string) error
}
