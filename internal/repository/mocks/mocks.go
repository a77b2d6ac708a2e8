// Package mocks provides testify mocks for the repository interfaces
// declared by the domain packages.
package mocks

import (
	"context"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/auth"
	"github.com/Team-NekoNyan/inkprov/internal/domain/contributor"
	"github.com/Team-NekoNyan/inkprov/internal/domain/profile"
	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/Team-NekoNyan/inkprov/internal/domain/reaction"
	"github.com/Team-NekoNyan/inkprov/internal/domain/snippet"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for the project repository interfaces.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) ListOpen(ctx context.Context) ([]project.Summary, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) ListCompleted(ctx context.Context) ([]project.Summary, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) ListByUser(ctx context.Context, userID string) ([]project.Summary, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]project.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectRepository) AcquireLock(ctx context.Context, projectID, userID string) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

func (m *ProjectRepository) ReleaseLock(ctx context.Context, projectID, userID string) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

func (m *ProjectRepository) MarkCompleted(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *ProjectRepository) IncrementContributorCount(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// SnippetRepository is a mock for the snippet repository interfaces.
type SnippetRepository struct {
	mock.Mock
}

func (m *SnippetRepository) Insert(ctx context.Context, snip *snippet.Snippet) error {
	args := m.Called(ctx, snip)
	return args.Error(0)
}

func (m *SnippetRepository) ListByProject(ctx context.Context, projectID string) ([]snippet.Snippet, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]snippet.Snippet); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SnippetRepository) CountByProject(ctx context.Context, projectID string) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

// ContributorRepository is a mock for the contributor repository interfaces.
type ContributorRepository struct {
	mock.Mock
}

func (m *ContributorRepository) Insert(ctx context.Context, c *contributor.Contributor) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ContributorRepository) Get(ctx context.Context, projectID, userID string) (*contributor.Contributor, error) {
	args := m.Called(ctx, projectID, userID)
	if c, ok := args.Get(0).(*contributor.Contributor); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ContributorRepository) MarkContributed(ctx context.Context, projectID, userID string, at time.Time) error {
	args := m.Called(ctx, projectID, userID, at)
	return args.Error(0)
}

func (m *ContributorRepository) ListByProject(ctx context.Context, projectID string) ([]contributor.Contributor, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]contributor.Contributor); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ReactionRepository is a mock for the reaction repository interfaces.
type ReactionRepository struct {
	mock.Mock
}

func (m *ReactionRepository) Upsert(ctx context.Context, r *reaction.Reaction) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ReactionRepository) Get(ctx context.Context, projectID, userID string) (*reaction.Reaction, error) {
	args := m.Called(ctx, projectID, userID)
	if r, ok := args.Get(0).(*reaction.Reaction); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReactionRepository) Counts(ctx context.Context, projectID string) (map[reaction.Type]int, error) {
	args := m.Called(ctx, projectID)
	if counts, ok := args.Get(0).(map[reaction.Type]int); ok {
		return counts, args.Error(1)
	}
	return nil, args.Error(1)
}

// UserRepository is a mock for the account repository interfaces.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *auth.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) Get(ctx context.Context, id string) (*auth.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*auth.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*auth.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// ProfileRepository is a mock for the profile repository interfaces.
type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProfileRepository) Get(ctx context.Context, userID string) (*profile.Profile, error) {
	args := m.Called(ctx, userID)
	if p, ok := args.Get(0).(*profile.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// StatsRepository is a mock for the stats repository interfaces.
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) Create(ctx context.Context, s *profile.Stats) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *StatsRepository) Get(ctx context.Context, userID string) (*profile.Stats, error) {
	args := m.Called(ctx, userID)
	if s, ok := args.Get(0).(*profile.Stats); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatsRepository) IncrementCounter(ctx context.Context, userID, stat string) error {
	args := m.Called(ctx, userID, stat)
	return args.Error(0)
}

func (m *StatsRepository) SetFlag(ctx context.Context, userID, stat string) error {
	args := m.Called(ctx, userID, stat)
	return args.Error(0)
}
