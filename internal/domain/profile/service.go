package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Team-NekoNyan/inkprov/internal/repository"
)

// Service handles profile, settings, and gamification operations.
type Service struct {
	profiles Repository
	stats    StatsRepository
	logger   *slog.Logger
}

// NewService creates a new profile service.
func NewService(profiles Repository, stats StatsRepository, logger *slog.Logger) *Service {
	return &Service{profiles: profiles, stats: stats, logger: logger}
}

// Get fetches a user's profile.
func (s *Service) Get(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return p, nil
}

// UpdateRequest carries settings-page changes. Nil fields are left as is.
type UpdateRequest struct {
	ProfileName          *string
	Bio                  *string
	AvatarURL            *string
	MatureContentEnabled *bool
}

// Update applies settings changes and returns the updated profile.
func (s *Service) Update(ctx context.Context, userID string, req UpdateRequest) (*Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.ProfileName != nil {
		name := strings.TrimSpace(*req.ProfileName)
		if name == "" {
			return nil, ErrInvalidInput
		}
		p.ProfileName = name
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		p.AvatarURL = *req.AvatarURL
	}
	if req.MatureContentEnabled != nil {
		p.MatureContentEnabled = *req.MatureContentEnabled
	}

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return p, nil
}

// GetStats fetches a user's gamification row, creating an empty one if
// the user predates the stats table.
func (s *Service) GetStats(ctx context.Context, userID string) (*Stats, error) {
	stats, err := s.stats.Get(ctx, userID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("getting stats: %w", err)
	}

	stats = &Stats{UserID: userID}
	if err := s.stats.Create(ctx, stats); err != nil {
		return nil, fmt.Errorf("creating stats: %w", err)
	}
	return stats, nil
}

// Redeem unlocks the reward mapped to code. Each code can be redeemed
// once per user.
func (s *Service) Redeem(ctx context.Context, userID, code string) (*Stats, error) {
	stat, ok := rewardCodes[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, ErrUnknownCode
	}

	stats, err := s.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	if statFlag(stats, stat) {
		return nil, ErrAlreadyRedeemed
	}

	if err := s.stats.SetFlag(ctx, userID, stat); err != nil {
		return nil, fmt.Errorf("setting reward flag: %w", err)
	}

	return s.GetStats(ctx, userID)
}

func statFlag(stats *Stats, stat string) bool {
	switch stat {
	case "reward_wordsmith":
		return stats.RewardWordsmith
	case "reward_trailblazer":
		return stats.RewardTrailblazer
	case "reward_night_owl":
		return stats.RewardNightOwl
	}
	return false
}
