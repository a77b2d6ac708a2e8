package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/domain/profile"
	"github.com/Team-NekoNyan/inkprov/internal/repository"
)

// ProfileRepository implements profile persistence over SQLite.
type ProfileRepository struct {
	db *DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO user_profiles (
			user_id, profile_name, bio, avatar_url,
			mature_content_enabled, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID, p.ProfileName, p.Bio, p.AvatarURL,
		p.MatureContentEnabled, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (*profile.Profile, error) {
	query := `
		SELECT user_id, profile_name, bio, avatar_url,
		       mature_content_enabled, created_at, updated_at
		FROM user_profiles
		WHERE user_id = ?
	`
	var p profile.Profile
	var bio, avatarURL sql.NullString
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.ProfileName, &bio, &avatarURL,
		&p.MatureContentEnabled, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	p.Bio = bio.String
	p.AvatarURL = avatarURL.String
	return &p, nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	query := `
		UPDATE user_profiles
		SET profile_name = ?, bio = ?, avatar_url = ?,
		    mature_content_enabled = ?, updated_at = ?
		WHERE user_id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		p.ProfileName, p.Bio, p.AvatarURL,
		p.MatureContentEnabled, time.Now(), p.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
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

// StatsRepository implements gamification stats persistence over SQLite.
type StatsRepository struct {
	db *DB
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(db *DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// statColumns allowlists the columns IncrementCounter and SetFlag may
// touch. Stat names come from callers, never from user input, but the
// identifier still cannot be a placeholder.
var statColumns = map[string]bool{
	"projects_created":   true,
	"snippets_written":   true,
	"stories_completed":  true,
	"reward_wordsmith":   true,
	"reward_trailblazer": true,
	"reward_night_owl":   true,
}

func (r *StatsRepository) Create(ctx context.Context, s *profile.Stats) error {
	query := "INSERT INTO user_gamification_stats (user_id) VALUES (?)"
	_, err := r.db.ExecContext(ctx, query, s.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create stats: %w", err)
	}
	return nil
}

func (r *StatsRepository) Get(ctx context.Context, userID string) (*profile.Stats, error) {
	query := `
		SELECT user_id, projects_created, snippets_written, stories_completed,
		       reward_wordsmith, reward_trailblazer, reward_night_owl
		FROM user_gamification_stats
		WHERE user_id = ?
	`
	var s profile.Stats
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID, &s.ProjectsCreated, &s.SnippetsWritten, &s.StoriesCompleted,
		&s.RewardWordsmith, &s.RewardTrailblazer, &s.RewardNightOwl,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &s, nil
}

func (r *StatsRepository) IncrementCounter(ctx context.Context, userID, stat string) error {
	if !statColumns[stat] {
		return fmt.Errorf("unknown stat column %q", stat)
	}
	query := fmt.Sprintf(
		"UPDATE user_gamification_stats SET %s = %s + 1 WHERE user_id = ?",
		stat, stat,
	)
	return r.updateStat(ctx, query, userID)
}

func (r *StatsRepository) SetFlag(ctx context.Context, userID, stat string) error {
	if !statColumns[stat] {
		return fmt.Errorf("unknown stat column %q", stat)
	}
	query := fmt.Sprintf(
		"UPDATE user_gamification_stats SET %s = 1 WHERE user_id = ?",
		stat,
	)
	return r.updateStat(ctx, query, userID)
}

func (r *StatsRepository) updateStat(ctx context.Context, query, userID string) error {
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to update stats: %w", err)
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
