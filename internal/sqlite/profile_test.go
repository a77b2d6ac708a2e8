package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/domain/profile"
	"github.com/Team-NekoNyan/inkprov/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTestProfile(t *testing.T, db *DB, userID string) *profile.Profile {
	t.Helper()

	now := time.Now()
	p := &profile.Profile{
		UserID:      userID,
		ProfileName: "writer",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, NewProfileRepository(db).Create(context.Background(), p))
	return p
}

func TestProfileCreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db)
	createTestProfile(t, db, user.ID)

	got, err := repo.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "writer", got.ProfileName)
	require.Empty(t, got.Bio)
}

func TestProfileUpdate(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db)
	p := createTestProfile(t, db, user.ID)

	p.ProfileName = "night owl"
	p.Bio = "I write after midnight."
	p.MatureContentEnabled = true
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "night owl", got.ProfileName)
	require.Equal(t, "I write after midnight.", got.Bio)
	require.True(t, got.MatureContentEnabled)
}

func TestProfileUpdateNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProfileRepository(db)

	err := repo.Update(context.Background(), &profile.Profile{UserID: uuid.NewString()})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStatsCreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db)
	require.NoError(t, repo.Create(ctx, &profile.Stats{UserID: user.ID}))

	got, err := repo.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.SnippetsWritten)
	require.False(t, got.RewardWordsmith)
}

func TestStatsIncrementCounter(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db)
	require.NoError(t, repo.Create(ctx, &profile.Stats{UserID: user.ID}))

	require.NoError(t, repo.IncrementCounter(ctx, user.ID, "snippets_written"))
	require.NoError(t, repo.IncrementCounter(ctx, user.ID, "snippets_written"))
	require.NoError(t, repo.IncrementCounter(ctx, user.ID, "projects_created"))

	got, err := repo.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.SnippetsWritten)
	require.Equal(t, 1, got.ProjectsCreated)
}

func TestStatsSetFlag(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db)
	require.NoError(t, repo.Create(ctx, &profile.Stats{UserID: user.ID}))

	require.NoError(t, repo.SetFlag(ctx, user.ID, "reward_wordsmith"))

	got, err := repo.Get(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, got.RewardWordsmith)
	require.False(t, got.RewardTrailblazer)
}

func TestStatsUnknownColumn(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db)
	require.NoError(t, repo.Create(ctx, &profile.Stats{UserID: user.ID}))

	require.Error(t, repo.IncrementCounter(ctx, user.ID, "email"))
	require.Error(t, repo.SetFlag(ctx, user.ID, "password_hash; --"))
}

func TestStatsNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStatsRepository(db)

	_, err := repo.Get(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.IncrementCounter(context.Background(), uuid.NewString(), "snippets_written")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
