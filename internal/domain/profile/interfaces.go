package profile

import "context"

// Repository provides persistence for profiles.
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	Get(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
}

// StatsRepository provides persistence for gamification stats.
type StatsRepository interface {
	Create(ctx context.Context, s *Stats) error
	Get(ctx context.Context, userID string) (*Stats, error)
	IncrementCounter(ctx context.Context, userID, stat string) error
	SetFlag(ctx context.Context, userID, stat string) error
}
