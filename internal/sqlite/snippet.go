package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Team-NekoNyan/inkprov/internal/domain/snippet"
	"github.com/Team-NekoNyan/inkprov/internal/repository"
)

// SnippetRepository implements snippet persistence over SQLite.
type SnippetRepository struct {
	db *DB
}

// NewSnippetRepository creates a new snippet repository.
func NewSnippetRepository(db *DB) *SnippetRepository {
	return &SnippetRepository{db: db}
}

func (r *SnippetRepository) Insert(ctx context.Context, snip *snippet.Snippet) error {
	query := `
		INSERT INTO project_snippets (
			id, project_id, creator_id, content, word_count, sequence_number, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		snip.ID, snip.ProjectID, snip.CreatorID,
		snip.Content, snip.WordCount, snip.SequenceNumber, snip.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert snippet: %w", err)
	}
	return nil
}

// ListByProject returns the project's snippets in story order.
func (r *SnippetRepository) ListByProject(ctx context.Context, projectID string) ([]snippet.Snippet, error) {
	query := `
		SELECT id, project_id, creator_id, content, word_count, sequence_number, created_at
		FROM project_snippets
		WHERE project_id = ?
		ORDER BY sequence_number ASC, created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snippets: %w", err)
	}
	defer rows.Close()

	var snippets []snippet.Snippet
	for rows.Next() {
		var s snippet.Snippet
		err := rows.Scan(
			&s.ID, &s.ProjectID, &s.CreatorID,
			&s.Content, &s.WordCount, &s.SequenceNumber, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snippet: %w", err)
		}
		snippets = append(snippets, s)
	}
	return snippets, rows.Err()
}

func (r *SnippetRepository) CountByProject(ctx context.Context, projectID string) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM project_snippets WHERE project_id = ?"
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(&count)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to count snippets: %w", err)
	}
	return count, nil
}
