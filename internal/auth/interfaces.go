package auth

import (
	"context"

	"github.com/Team-NekoNyan/inkprov/internal/domain/profile"
)

// UserRepository provides persistence for accounts.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// ProfileRepository bootstraps the profile row at registration.
type ProfileRepository interface {
	Create(ctx context.Context, p *profile.Profile) error
}

// StatsRepository bootstraps the gamification row at registration.
type StatsRepository interface {
	Create(ctx context.Context, s *profile.Stats) error
}
