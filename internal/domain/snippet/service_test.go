package snippet

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type repoMock struct {
	mock.Mock
}

func (m *repoMock) Insert(ctx context.Context, snip *Snippet) error {
	args := m.Called(ctx, snip)
	return args.Error(0)
}

func (m *repoMock) ListByProject(ctx context.Context, projectID string) ([]Snippet, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]Snippet); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *repoMock) CountByProject(ctx context.Context, projectID string) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

func TestStory(t *testing.T) {
	repo := new(repoMock)
	svc := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	repo.On("ListByProject", ctx, "proj-1").Return([]Snippet{
		{Content: "It began at midnight. ", SequenceNumber: 1},
		{Content: "The train never stopped.", SequenceNumber: 2},
	}, nil)

	story, err := svc.Story(ctx, "proj-1")
	require.NoError(t, err)
	require.Equal(t, "It began at midnight.\n\nThe train never stopped.", story)
}

func TestStoryEmpty(t *testing.T) {
	repo := new(repoMock)
	svc := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	repo.On("ListByProject", ctx, "proj-1").Return([]Snippet{}, nil)

	story, err := svc.Story(ctx, "proj-1")
	require.NoError(t, err)
	require.Empty(t, story)
}
