package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/domain/contributor"
	"github.com/Team-NekoNyan/inkprov/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func insertTestContributor(t *testing.T, repo *ContributorRepository, projectID, userID string, isCreator bool) *contributor.Contributor {
	t.Helper()

	c := &contributor.Contributor{
		ID:               uuid.NewString(),
		ProjectID:        projectID,
		UserID:           userID,
		IsProjectCreator: isCreator,
		JoinedAt:         time.Now(),
	}
	require.NoError(t, repo.Insert(context.Background(), c))
	return c
}

func TestContributorInsertAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContributorRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db)
	proj := createTestProject(t, db, user.ID)
	insertTestContributor(t, repo, proj.ID, user.ID, true)

	got, err := repo.Get(ctx, proj.ID, user.ID)
	require.NoError(t, err)
	require.True(t, got.IsProjectCreator)
	require.False(t, got.MadeContribution)
	require.Nil(t, got.LastContributionAt)
}

func TestContributorInsertDuplicate(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContributorRepository(db)

	user := createTestUser(t, db)
	proj := createTestProject(t, db, user.ID)
	insertTestContributor(t, repo, proj.ID, user.ID, true)

	dup := &contributor.Contributor{
		ID:        uuid.NewString(),
		ProjectID: proj.ID,
		UserID:    user.ID,
		JoinedAt:  time.Now(),
	}
	require.ErrorIs(t, repo.Insert(context.Background(), dup), repository.ErrDuplicate)
}

func TestContributorInsertMissingProject(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContributorRepository(db)

	c := &contributor.Contributor{
		ID:        uuid.NewString(),
		ProjectID: uuid.NewString(),
		UserID:    uuid.NewString(),
		JoinedAt:  time.Now(),
	}
	require.ErrorIs(t, repo.Insert(context.Background(), c), repository.ErrForeignKeyViolation)
}

func TestContributorGetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContributorRepository(db)

	_, err := repo.Get(context.Background(), uuid.NewString(), uuid.NewString())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestContributorMarkContributed(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContributorRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db)
	proj := createTestProject(t, db, user.ID)
	insertTestContributor(t, repo, proj.ID, user.ID, false)

	at := time.Now()
	require.NoError(t, repo.MarkContributed(ctx, proj.ID, user.ID, at))

	got, err := repo.Get(ctx, proj.ID, user.ID)
	require.NoError(t, err)
	require.True(t, got.MadeContribution)
	require.NotNil(t, got.LastContributionAt)
}

func TestContributorMarkContributedNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContributorRepository(db)

	err := repo.MarkContributed(context.Background(), uuid.NewString(), uuid.NewString(), time.Now())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestContributorListByProject(t *testing.T) {
	db := NewTestDB(t)
	repo := NewContributorRepository(db)
	ctx := context.Background()

	creator := createTestUser(t, db)
	writer := createTestUser(t, db)
	proj := createTestProject(t, db, creator.ID)

	insertTestContributor(t, repo, proj.ID, creator.ID, true)
	insertTestContributor(t, repo, proj.ID, writer.ID, false)

	roster, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
}
