package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/domain/contributor"
	"github.com/Team-NekoNyan/inkprov/internal/repository"
)

// ContributorRepository implements membership persistence over SQLite.
type ContributorRepository struct {
	db *DB
}

// NewContributorRepository creates a new contributor repository.
func NewContributorRepository(db *DB) *ContributorRepository {
	return &ContributorRepository{db: db}
}

func (r *ContributorRepository) Insert(ctx context.Context, c *contributor.Contributor) error {
	query := `
		INSERT INTO project_contributors (
			id, project_id, user_id, user_is_project_creator,
			user_made_contribution, joined_at, last_contribution_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.ProjectID, c.UserID, c.IsProjectCreator,
		c.MadeContribution, c.JoinedAt, c.LastContributionAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert contributor: %w", err)
	}
	return nil
}

func (r *ContributorRepository) Get(ctx context.Context, projectID, userID string) (*contributor.Contributor, error) {
	query := `
		SELECT id, project_id, user_id, user_is_project_creator,
		       user_made_contribution, joined_at, last_contribution_at
		FROM project_contributors
		WHERE project_id = ? AND user_id = ?
	`
	return scanContributor(r.db.QueryRowContext(ctx, query, projectID, userID))
}

func scanContributor(row rowScanner) (*contributor.Contributor, error) {
	var c contributor.Contributor
	var lastContribution sql.NullTime
	err := row.Scan(
		&c.ID, &c.ProjectID, &c.UserID, &c.IsProjectCreator,
		&c.MadeContribution, &c.JoinedAt, &lastContribution,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contributor: %w", err)
	}
	if lastContribution.Valid {
		c.LastContributionAt = &lastContribution.Time
	}
	return &c, nil
}

// MarkContributed flags the membership as having written and records
// when.
func (r *ContributorRepository) MarkContributed(ctx context.Context, projectID, userID string, at time.Time) error {
	query := `
		UPDATE project_contributors
		SET user_made_contribution = 1, last_contribution_at = ?
		WHERE project_id = ? AND user_id = ?
	`
	result, err := r.db.ExecContext(ctx, query, at, projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark contribution: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListByProject returns the project's roster in join order.
func (r *ContributorRepository) ListByProject(ctx context.Context, projectID string) ([]contributor.Contributor, error) {
	query := `
		SELECT id, project_id, user_id, user_is_project_creator,
		       user_made_contribution, joined_at, last_contribution_at
		FROM project_contributors
		WHERE project_id = ?
		ORDER BY joined_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributors: %w", err)
	}
	defer rows.Close()

	var contributors []contributor.Contributor
	for rows.Next() {
		var c contributor.Contributor
		var lastContribution sql.NullTime
		err := rows.Scan(
			&c.ID, &c.ProjectID, &c.UserID, &c.IsProjectCreator,
			&c.MadeContribution, &c.JoinedAt, &lastContribution,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contributor: %w", err)
		}
		if lastContribution.Valid {
			c.LastContributionAt = &lastContribution.Time
		}
		contributors = append(contributors, c)
	}
	return contributors, rows.Err()
}
