package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/domain/profile"
	"github.com/Team-NekoNyan/inkprov/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service handles sign-up, sign-in, and session token resolution.
type Service struct {
	users    UserRepository
	profiles ProfileRepository
	stats    StatsRepository
	secret   []byte
	logger   *slog.Logger
}

// NewService creates a new auth service. secret signs session tokens.
func NewService(
	users UserRepository,
	profiles ProfileRepository,
	stats StatsRepository,
	secret string,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:    users,
		profiles: profiles,
		stats:    stats,
		secret:   []byte(secret),
		logger:   logger,
	}
}

// RegisterRequest defines sign-up inputs.
type RegisterRequest struct {
	Email       string
	Password    string
	ProfileName string
}

// Register creates an account with its profile and stats rows.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidInput
	}
	if len(req.Password) < 8 {
		return nil, ErrInvalidInput
	}
	name := strings.TrimSpace(req.ProfileName)
	if name == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	if err := s.profiles.Create(ctx, &profile.Profile{
		UserID:      user.ID,
		ProfileName: name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	if err := s.stats.Create(ctx, &profile.Stats{UserID: user.ID}); err != nil {
		s.logger.Error("failed to create stats row", "user_id", user.ID, "error", err)
	}

	return user, nil
}

// Login verifies credentials and returns a signed session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := signToken(s.secret, user.ID, time.Now())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken signs a session token for an already-authenticated user.
func (s *Service) IssueToken(userID string) (string, error) {
	return signToken(s.secret, userID, time.Now())
}

// Verify resolves a session token to a user ID.
func (s *Service) Verify(ctx context.Context, token string) (string, error) {
	return parseToken(s.secret, token)
}

// CurrentUser resolves a session token to the full account row.
func (s *Service) CurrentUser(ctx context.Context, token string) (*User, error) {
	userID, err := s.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return user, nil
}
