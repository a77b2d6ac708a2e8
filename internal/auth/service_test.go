package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/auth"
	"github.com/Team-NekoNyan/inkprov/internal/repository"
	"github.com/Team-NekoNyan/inkprov/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) (*auth.Service, *mocks.UserRepository, *mocks.ProfileRepository, *mocks.StatsRepository) {
	t.Helper()

	users := new(mocks.UserRepository)
	profiles := new(mocks.ProfileRepository)
	stats := new(mocks.StatsRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewService(users, profiles, stats, testSecret, logger), users, profiles, stats
}

func TestRegister(t *testing.T) {
	svc, users, profiles, stats := newTestService(t)
	ctx := context.Background()

	users.On("GetByEmail", ctx, "new@example.com").Return(nil, repository.ErrNotFound)
	users.On("Create", ctx, mock.MatchedBy(func(u *auth.User) bool {
		return u.Email == "new@example.com" && u.PasswordHash != "" && u.PasswordHash != "hunter2boat"
	})).Return(nil)
	profiles.On("Create", ctx, mock.Anything).Return(nil)
	stats.On("Create", ctx, mock.Anything).Return(nil)

	user, err := svc.Register(ctx, auth.RegisterRequest{
		Email:       "  New@Example.com ",
		Password:    "hunter2boat",
		ProfileName: "newbie",
	})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", user.Email)
	users.AssertExpectations(t)
	profiles.AssertExpectations(t)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, auth.RegisterRequest{Email: "not-an-email", Password: "longenough", ProfileName: "x"})
	require.ErrorIs(t, err, auth.ErrInvalidInput)

	_, err = svc.Register(ctx, auth.RegisterRequest{Email: "a@b.com", Password: "short", ProfileName: "x"})
	require.ErrorIs(t, err, auth.ErrInvalidInput)

	_, err = svc.Register(ctx, auth.RegisterRequest{Email: "a@b.com", Password: "longenough", ProfileName: " "})
	require.ErrorIs(t, err, auth.ErrInvalidInput)
}

func TestRegisterProfileCreateFails(t *testing.T) {
	svc, users, profiles, stats := newTestService(t)
	ctx := context.Background()

	users.On("GetByEmail", ctx, "new@example.com").Return(nil, repository.ErrNotFound)
	users.On("Create", ctx, mock.Anything).Return(nil)
	profiles.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := svc.Register(ctx, auth.RegisterRequest{
		Email:       "new@example.com",
		Password:    "longenough",
		ProfileName: "newbie",
	})
	require.ErrorContains(t, err, "creating profile")
	stats.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterEmailTaken(t *testing.T) {
	svc, users, _, _ := newTestService(t)
	ctx := context.Background()

	users.On("GetByEmail", ctx, "taken@example.com").Return(&auth.User{ID: "u1"}, nil)

	_, err := svc.Register(ctx, auth.RegisterRequest{
		Email:       "taken@example.com",
		Password:    "longenough",
		ProfileName: "x",
	})
	require.ErrorIs(t, err, auth.ErrEmailTaken)
}

func TestLoginAndVerify(t *testing.T) {
	svc, users, _, _ := newTestService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetByEmail", ctx, "a@b.com").Return(&auth.User{
		ID:           "user-1",
		Email:        "a@b.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}, nil)

	token, user, err := svc.Login(ctx, "a@b.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, "user-1", user.ID)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, _, _ := newTestService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetByEmail", ctx, "a@b.com").Return(&auth.User{
		ID:           "user-1",
		PasswordHash: string(hash),
	}, nil)

	_, _, err = svc.Login(ctx, "a@b.com", "wrong")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, users, _, _ := newTestService(t)
	ctx := context.Background()

	users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrNotFound)

	_, _, err := svc.Login(ctx, "ghost@example.com", "whatever")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestIssueToken(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	token, err := svc.IssueToken("user-1")
	require.NoError(t, err)

	userID, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestVerifyGarbageToken(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Verify(context.Background(), "not.a.token")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestCurrentUser(t *testing.T) {
	svc, users, _, _ := newTestService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetByEmail", ctx, "a@b.com").Return(&auth.User{
		ID:           "user-1",
		Email:        "a@b.com",
		PasswordHash: string(hash),
	}, nil)
	users.On("Get", ctx, "user-1").Return(&auth.User{ID: "user-1", Email: "a@b.com"}, nil)

	token, _, err := svc.Login(ctx, "a@b.com", "correct horse")
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "user-1", user.ID)
}
