package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/Team-NekoNyan/inkprov/internal/repository"
)

// ProjectRepository implements project persistence over SQLite.
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	query := `
		INSERT INTO projects (
			id, title, description, project_genre, is_public, is_mature_content,
			creator_id, max_snippets, current_contributors_count,
			is_completed, is_locked, locked_by, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		proj.ID, proj.Title, proj.Description, proj.Genre,
		proj.IsPublic, proj.IsMatureContent, proj.CreatorID,
		proj.MaxSnippets, proj.CurrentContributorsCount,
		proj.IsCompleted, proj.IsLocked, proj.LockedBy,
		proj.CreatedAt, proj.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `
		SELECT id, title, description, project_genre, is_public, is_mature_content,
		       creator_id, max_snippets, current_contributors_count,
		       is_completed, is_locked, locked_by, created_at, updated_at
		FROM projects
		WHERE id = ?
	`
	return scanProject(r.db.QueryRowContext(ctx, query, id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var proj project.Project
	var description, lockedBy sql.NullString
	err := row.Scan(
		&proj.ID, &proj.Title, &description, &proj.Genre,
		&proj.IsPublic, &proj.IsMatureContent, &proj.CreatorID,
		&proj.MaxSnippets, &proj.CurrentContributorsCount,
		&proj.IsCompleted, &proj.IsLocked, &lockedBy,
		&proj.CreatedAt, &proj.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	proj.Description = description.String
	if lockedBy.Valid {
		proj.LockedBy = &lockedBy.String
	}
	return &proj, nil
}

// ListOpen returns public, in-progress projects, most recently
// updated first.
func (r *ProjectRepository) ListOpen(ctx context.Context) ([]project.Summary, error) {
	query := summaryQuery + `
		WHERE p.is_public = 1 AND p.is_completed = 0
		GROUP BY p.id
		ORDER BY p.updated_at DESC
	`
	return r.listSummaries(ctx, query)
}

// ListCompleted returns public, finished stories, most recently
// updated first.
func (r *ProjectRepository) ListCompleted(ctx context.Context) ([]project.Summary, error) {
	query := summaryQuery + `
		WHERE p.is_public = 1 AND p.is_completed = 1
		GROUP BY p.id
		ORDER BY p.updated_at DESC
	`
	return r.listSummaries(ctx, query)
}

// ListByUser returns every project the user is a contributor of,
// public or not.
func (r *ProjectRepository) ListByUser(ctx context.Context, userID string) ([]project.Summary, error) {
	query := summaryQuery + `
		WHERE p.id IN (SELECT project_id FROM project_contributors WHERE user_id = ?)
		GROUP BY p.id
		ORDER BY p.updated_at DESC
	`
	return r.listSummaries(ctx, query, userID)
}

const summaryQuery = `
	SELECT p.id, p.title, p.description, p.project_genre, p.is_mature_content,
	       p.creator_id, p.max_snippets, COUNT(s.id),
	       p.current_contributors_count, p.is_completed, p.is_locked, p.updated_at
	FROM projects p
	LEFT JOIN project_snippets s ON s.project_id = p.id
`

func (r *ProjectRepository) listSummaries(ctx context.Context, query string, args ...any) ([]project.Summary, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var summaries []project.Summary
	for rows.Next() {
		var s project.Summary
		var description sql.NullString
		err := rows.Scan(
			&s.ID, &s.Title, &description, &s.Genre, &s.IsMatureContent,
			&s.CreatorID, &s.MaxSnippets, &s.SnippetCount,
			&s.ContributorCount, &s.IsCompleted, &s.IsLocked, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		s.Description = description.String
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
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

// AcquireLock performs the guarded lock write. The WHERE clause is the
// whole concurrency story: of two racing writers, exactly one matches
// the unlocked row. The losing writer gets ErrConflict.
func (r *ProjectRepository) AcquireLock(ctx context.Context, projectID, userID string) error {
	query := `
		UPDATE projects
		SET is_locked = 1, locked_by = ?, updated_at = ?
		WHERE id = ? AND is_completed = 0 AND (is_locked = 0 OR locked_by = ?)
	`
	result, err := r.db.ExecContext(ctx, query, userID, time.Now(), projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		exists, err := r.exists(ctx, projectID)
		if err != nil {
			return err
		}
		if !exists {
			return repository.ErrNotFound
		}
		return repository.ErrConflict
	}
	return nil
}

// ReleaseLock clears the lock only if userID holds it. Zero rows
// matched means someone else holds it (or nobody does), which is fine.
func (r *ProjectRepository) ReleaseLock(ctx context.Context, projectID, userID string) error {
	query := `
		UPDATE projects
		SET is_locked = 0, locked_by = NULL, updated_at = ?
		WHERE id = ? AND locked_by = ?
	`
	result, err := r.db.ExecContext(ctx, query, time.Now(), projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		exists, err := r.exists(ctx, projectID)
		if err != nil {
			return err
		}
		if !exists {
			return repository.ErrNotFound
		}
	}
	return nil
}

// MarkCompleted finalizes the project and clears the lock in one write.
func (r *ProjectRepository) MarkCompleted(ctx context.Context, projectID string) error {
	query := `
		UPDATE projects
		SET is_completed = 1, is_locked = 0, locked_by = NULL, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query, time.Now(), projectID)
	if err != nil {
		return fmt.Errorf("failed to mark project completed: %w", err)
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

func (r *ProjectRepository) IncrementContributorCount(ctx context.Context, projectID string) error {
	query := `
		UPDATE projects
		SET current_contributors_count = current_contributors_count + 1, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query, time.Now(), projectID)
	if err != nil {
		return fmt.Errorf("failed to increment contributor count: %w", err)
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

func (r *ProjectRepository) exists(ctx context.Context, projectID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects WHERE id = ?", projectID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check project existence: %w", err)
	}
	return n > 0, nil
}
