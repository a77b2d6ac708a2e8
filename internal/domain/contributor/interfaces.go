package contributor

import (
	"context"
	"time"
)

// Repository provides persistence for contributor memberships.
type Repository interface {
	Insert(ctx context.Context, c *Contributor) error
	Get(ctx context.Context, projectID, userID string) (*Contributor, error)
	MarkContributed(ctx context.Context, projectID, userID string, at time.Time) error
	ListByProject(ctx context.Context, projectID string) ([]Contributor, error)
}
