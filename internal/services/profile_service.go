package services

import (
	"context"
	"strings"

	"github.com/memoflash/memoflash/internal/errors"
	"github.com/memoflash/memoflash/internal/logger"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/repository"
)

// ProfileService handles learner profile business logic
type ProfileService interface {
	GetProfile(ctx context.Context, id int64) (*models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	CreateProfile(ctx context.Context, name string) (*models.Profile, error)
	DeleteProfile(ctx context.Context, id int64) error
}

type profileService struct {
	profiles repository.ProfileRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profiles repository.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) GetProfile(ctx context.Context, id int64) (*models.Profile, error) {
	profile, err := s.profiles.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("profile", id)
	}
	return profile, nil
}

func (s *profileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return profiles, nil
}

func (s *profileService) CreateProfile(ctx context.Context, name string) (*models.Profile, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}

	profile, err := s.profiles.Insert(ctx, name)
	if err != nil {
		log.Error("failed to create profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("profile created: id=%d, name=%s", profile.ID, profile.Name)
	return profile, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	profile, err := s.profiles.Get(ctx, id)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if profile == nil {
		return errors.NewNotFoundError("profile", id)
	}

	if err := s.profiles.Delete(ctx, id); err != nil {
		log.Error("failed to delete profile: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("profile deleted: id=%d", id)
	return nil
}
