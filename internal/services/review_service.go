package services

import (
	"context"
	"time"

	"github.com/memoflash/memoflash/internal/errors"
	"github.com/memoflash/memoflash/internal/fsrs"
	"github.com/memoflash/memoflash/internal/logger"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/repository"
)

// ReviewService runs the study loop: serving the due queue, previewing
// outcomes, and committing reviews.
type ReviewService interface {
	NextCards(ctx context.Context, profileID int64, now time.Time, limit int) ([]models.QueueCard, error)
	PreviewCard(ctx context.Context, cardID, profileID int64, now time.Time) (fsrs.SchedulingResult, error)
	ReviewCard(ctx context.Context, cardID, profileID int64, rating fsrs.Rating, now time.Time) (*models.CardSchedule, error)
	CardHistory(ctx context.Context, cardID, profileID int64, limit int) ([]models.ReviewRecord, error)
}

type reviewService struct {
	schedules  repository.ScheduleRepository
	reviews    repository.ReviewRepository
	scheduler  *fsrs.Scheduler
	queueLimit int
}

// NewReviewService creates a new ReviewService. queueLimit caps how many
// due cards a single queue request may return.
func NewReviewService(schedules repository.ScheduleRepository, reviews repository.ReviewRepository, scheduler *fsrs.Scheduler, queueLimit int) ReviewService {
	if queueLimit <= 0 {
		queueLimit = 50
	}
	return &reviewService{schedules: schedules, reviews: reviews, scheduler: scheduler, queueLimit: queueLimit}
}

func (s *reviewService) NextCards(ctx context.Context, profileID int64, now time.Time, limit int) ([]models.QueueCard, error) {
	if limit <= 0 || limit > s.queueLimit {
		limit = s.queueLimit
	}
	cards, err := s.schedules.DueCards(ctx, profileID, now, limit)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return cards, nil
}

func (s *reviewService) PreviewCard(ctx context.Context, cardID, profileID int64, now time.Time) (fsrs.SchedulingResult, error) {
	schedule, err := s.schedules.Get(ctx, cardID, profileID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if schedule == nil {
		return nil, errors.NewNotFoundError("card schedule", cardID)
	}
	return s.scheduler.Schedule(schedule.MemoryState(), now), nil
}

func (s *reviewService) ReviewCard(ctx context.Context, cardID, profileID int64, rating fsrs.Rating, now time.Time) (*models.CardSchedule, error) {
	log := logger.FromContext(ctx)

	if !rating.IsValid() {
		return nil, errors.NewValidationError("rating", "must be one of again, hard, good, easy")
	}

	schedule, err := s.schedules.Get(ctx, cardID, profileID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if schedule == nil {
		return nil, errors.NewNotFoundError("card schedule", cardID)
	}

	prior := schedule.MemoryState()
	updated := s.scheduler.Review(prior, rating, now)
	schedule.ApplyMemoryState(updated)

	if err := s.schedules.Update(ctx, *schedule); err != nil {
		log.Error("failed to update schedule for card %d: %v", cardID, err)
		return nil, errors.NewInternalError(err)
	}

	record := models.ReviewRecord{
		CardID:        cardID,
		ProfileID:     profileID,
		Rating:        rating,
		PriorState:    prior.State,
		ElapsedDays:   updated.ElapsedDays,
		ScheduledDays: updated.ScheduledDays,
		ReviewedAt:    now,
	}
	if _, err := s.reviews.Insert(ctx, record); err != nil {
		// The schedule update already committed; losing one log row is
		// not worth failing the review.
		log.Warn("failed to record review for card %d: %v", cardID, err)
	}

	log.Info("card reviewed: card_id=%d, profile_id=%d, rating=%s, next_due=%s",
		cardID, profileID, rating, updated.Due.Format(time.RFC3339))
	return schedule, nil
}

func (s *reviewService) CardHistory(ctx context.Context, cardID, profileID int64, limit int) ([]models.ReviewRecord, error) {
	schedule, err := s.schedules.Get(ctx, cardID, profileID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if schedule == nil {
		return nil, errors.NewNotFoundError("card schedule", cardID)
	}

	if limit <= 0 || limit > 500 {
		limit = 100
	}
	records, err := s.reviews.ListForCard(ctx, cardID, profileID, limit)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return records, nil
}
