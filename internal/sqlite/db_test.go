package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/auth"
	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// NewTestDB creates an in-memory database with migrations applied.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err)
	// A second pooled connection would see its own empty memory DB.
	db.SetMaxOpenConns(1)
	require.NoError(t, db.RunMigrations())

	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func createTestUser(t *testing.T, db *DB) *auth.User {
	t.Helper()

	user := &auth.User{
		ID:        uuid.NewString(),
		Email:     uuid.NewString() + "@example.com",
		CreatedAt: time.Now(),
	}
	user.PasswordHash = "x"
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func createTestProject(t *testing.T, db *DB, creatorID string) *project.Project {
	t.Helper()

	now := time.Now()
	proj := &project.Project{
		ID:          uuid.NewString(),
		Title:       "Test Story",
		Genre:       "fantasy",
		IsPublic:    true,
		CreatorID:   creatorID,
		MaxSnippets: 12,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, NewProjectRepository(db).Create(context.Background(), proj))
	return proj
}

func TestRunMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"users", "user_profiles", "user_gamification_stats",
		"projects", "project_snippets", "project_contributors", "project_reactions",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestRunMigrationsIdempotent(t *testing.T) {
	db := NewTestDB(t)
	require.NoError(t, db.RunMigrations())
}
