package snippet

import "context"

// Repository provides persistence for snippets.
type Repository interface {
	Insert(ctx context.Context, snip *Snippet) error
	ListByProject(ctx context.Context, projectID string) ([]Snippet, error)
	CountByProject(ctx context.Context, projectID string) (int, error)
}
