package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Team-NekoNyan/inkprov/internal/domain/reaction"
	"github.com/Team-NekoNyan/inkprov/internal/repository"
)

// ReactionRepository implements reaction persistence over SQLite.
type ReactionRepository struct {
	db *DB
}

// NewReactionRepository creates a new reaction repository.
func NewReactionRepository(db *DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// Upsert inserts the reaction, or replaces the user's existing one for
// the same project.
func (r *ReactionRepository) Upsert(ctx context.Context, react *reaction.Reaction) error {
	query := `
		INSERT INTO project_reactions (id, project_id, user_id, reaction, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		react.ID, react.ProjectID, react.UserID, react.Type, react.CreatedAt,
	)
	if err == nil {
		return nil
	}
	if isForeignKeyViolation(err) {
		return repository.ErrForeignKeyViolation
	}
	if !isUniqueViolation(err) {
		return fmt.Errorf("failed to insert reaction: %w", err)
	}

	update := `
		UPDATE project_reactions
		SET reaction = ?, created_at = ?
		WHERE project_id = ? AND user_id = ?
	`
	_, err = r.db.ExecContext(ctx, update,
		react.Type, react.CreatedAt, react.ProjectID, react.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reaction: %w", err)
	}
	return nil
}

func (r *ReactionRepository) Get(ctx context.Context, projectID, userID string) (*reaction.Reaction, error) {
	query := `
		SELECT id, project_id, user_id, reaction, created_at
		FROM project_reactions
		WHERE project_id = ? AND user_id = ?
	`
	var react reaction.Reaction
	err := r.db.QueryRowContext(ctx, query, projectID, userID).Scan(
		&react.ID, &react.ProjectID, &react.UserID, &react.Type, &react.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reaction: %w", err)
	}
	return &react, nil
}

func (r *ReactionRepository) Counts(ctx context.Context, projectID string) (map[reaction.Type]int, error) {
	query := `
		SELECT reaction, COUNT(*)
		FROM project_reactions
		WHERE project_id = ?
		GROUP BY reaction
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count reactions: %w", err)
	}
	defer rows.Close()

	counts := make(map[reaction.Type]int)
	for rows.Next() {
		var t reaction.Type
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, fmt.Errorf("failed to scan reaction count: %w", err)
		}
		counts[t] = n
	}
	return counts, rows.Err()
}
