package reaction

import (
	"context"

	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
)

// Repository provides persistence for reactions.
type Repository interface {
	Upsert(ctx context.Context, r *Reaction) error
	Get(ctx context.Context, projectID, userID string) (*Reaction, error)
	Counts(ctx context.Context, projectID string) (map[Type]int, error)
}

// ProjectRepository provides project reads for completion checks.
type ProjectRepository interface {
	Get(ctx context.Context, id string) (*project.Project, error)
}
