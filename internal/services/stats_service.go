package services

import (
	"context"
	"time"

	"github.com/memoflash/memoflash/internal/errors"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/repository"
)

// StatsService reports study statistics for a profile
type StatsService interface {
	Summary(ctx context.Context, profileID int64, now time.Time) (*models.ProfileSummary, error)
	RatingBreakdown(ctx context.Context, profileID int64) ([]models.RatingCount, error)
	DeckStats(ctx context.Context, profileID int64, now time.Time) ([]models.DeckStat, error)
}

type statsService struct {
	stats    repository.StatsRepository
	profiles repository.ProfileRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(stats repository.StatsRepository, profiles repository.ProfileRepository) StatsService {
	return &statsService{stats: stats, profiles: profiles}
}

func (s *statsService) checkProfile(ctx context.Context, profileID int64) error {
	profile, err := s.profiles.Get(ctx, profileID)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if profile == nil {
		return errors.NewNotFoundError("profile", profileID)
	}
	return nil
}

func (s *statsService) Summary(ctx context.Context, profileID int64, now time.Time) (*models.ProfileSummary, error) {
	if err := s.checkProfile(ctx, profileID); err != nil {
		return nil, err
	}
	summary, err := s.stats.ProfileSummary(ctx, profileID, now)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return summary, nil
}

func (s *statsService) RatingBreakdown(ctx context.Context, profileID int64) ([]models.RatingCount, error) {
	if err := s.checkProfile(ctx, profileID); err != nil {
		return nil, err
	}
	counts, err := s.stats.RatingBreakdown(ctx, profileID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return counts, nil
}

func (s *statsService) DeckStats(ctx context.Context, profileID int64, now time.Time) ([]models.DeckStat, error) {
	if err := s.checkProfile(ctx, profileID); err != nil {
		return nil, err
	}
	stats, err := s.stats.DeckStats(ctx, profileID, now)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return stats, nil
}
