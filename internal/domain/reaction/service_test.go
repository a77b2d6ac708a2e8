package reaction_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/Team-NekoNyan/inkprov/internal/domain/reaction"
	"github.com/Team-NekoNyan/inkprov/internal/repository"
	"github.com/Team-NekoNyan/inkprov/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*reaction.Service, *mocks.ReactionRepository, *mocks.ProjectRepository) {
	t.Helper()

	reactions := new(mocks.ReactionRepository)
	projects := new(mocks.ProjectRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return reaction.NewService(reactions, projects, logger), reactions, projects
}

func TestReact(t *testing.T) {
	svc, reactions, projects := newTestService(t)
	ctx := context.Background()

	projects.On("Get", ctx, "proj-1").Return(&project.Project{ID: "proj-1", IsCompleted: true}, nil)
	reactions.On("Upsert", ctx, mock.MatchedBy(func(r *reaction.Reaction) bool {
		return r.ProjectID == "proj-1" && r.UserID == "user-1" && r.Type == reaction.TypeHeart
	})).Return(nil)

	r, err := svc.React(ctx, "proj-1", "user-1", reaction.TypeHeart)
	require.NoError(t, err)
	require.Equal(t, reaction.TypeHeart, r.Type)
	reactions.AssertExpectations(t)
}

func TestReactInvalidType(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.React(context.Background(), "proj-1", "user-1", reaction.Type("sparkle"))
	require.ErrorIs(t, err, reaction.ErrInvalidReaction)
}

func TestReactStoryNotCompleted(t *testing.T) {
	svc, reactions, projects := newTestService(t)
	ctx := context.Background()

	projects.On("Get", ctx, "proj-1").Return(&project.Project{ID: "proj-1"}, nil)

	_, err := svc.React(ctx, "proj-1", "user-1", reaction.TypeHeart)
	require.ErrorIs(t, err, reaction.ErrStoryNotCompleted)
	reactions.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestReactProjectNotFound(t *testing.T) {
	svc, _, projects := newTestService(t)
	ctx := context.Background()

	projects.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)

	_, err := svc.React(ctx, "missing", "user-1", reaction.TypeHeart)
	require.ErrorIs(t, err, reaction.ErrProjectNotFound)
}

func TestGetNone(t *testing.T) {
	svc, reactions, _ := newTestService(t)
	ctx := context.Background()

	reactions.On("Get", ctx, "proj-1", "user-1").Return(nil, repository.ErrNotFound)

	r, err := svc.Get(ctx, "proj-1", "user-1")
	require.NoError(t, err)
	require.Nil(t, r)
}

func TestTypeValid(t *testing.T) {
	require.True(t, reaction.TypeHeart.Valid())
	require.True(t, reaction.TypeThumbsUp.Valid())
	require.True(t, reaction.TypeLaugh.Valid())
	require.False(t, reaction.Type("").Valid())
	require.False(t, reaction.Type("angry").Valid())
}
