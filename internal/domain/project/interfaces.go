package project

import (
	"context"

	"github.com/Team-NekoNyan/inkprov/internal/domain/contributor"
	"github.com/Team-NekoNyan/inkprov/internal/domain/snippet"
)

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	ListOpen(ctx context.Context) ([]Summary, error)
	ListCompleted(ctx context.Context) ([]Summary, error)
	ListByUser(ctx context.Context, userID string) ([]Summary, error)
	Delete(ctx context.Context, id string) error
}

// SnippetRepository provides snippet writes for the opening contribution.
type SnippetRepository interface {
	Insert(ctx context.Context, snip *snippet.Snippet) error
}

// ContributorRepository provides membership writes for the creator row.
type ContributorRepository interface {
	Insert(ctx context.Context, c *contributor.Contributor) error
}

// StatsRepository records gamification side effects of project creation.
type StatsRepository interface {
	IncrementCounter(ctx context.Context, userID, stat string) error
}
