package repository

import (
	"context"
	"time"

	"github.com/memoflash/memoflash/internal/models"
)

// ProfileRepository handles learner profile data access
type ProfileRepository interface {
	Get(ctx context.Context, id int64) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Insert(ctx context.Context, name string) (*models.Profile, error)
	Delete(ctx context.Context, id int64) error
}

// DeckRepository handles deck data access
type DeckRepository interface {
	Get(ctx context.Context, id int64) (*models.Deck, error)
	List(ctx context.Context, profileID int64) ([]models.Deck, error)
	Insert(ctx context.Context, deck models.Deck) (int64, error)
	Update(ctx context.Context, deck models.Deck) error
	Delete(ctx context.Context, id int64) error
}

// CardRepository handles card content data access
type CardRepository interface {
	Get(ctx context.Context, id int64) (*models.Card, error)
	List(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
	Count(ctx context.Context, filter models.CardFilter) (int, error)
	Insert(ctx context.Context, card models.Card) (int64, error)
	InsertBatch(ctx context.Context, cards []models.Card) ([]int64, error)
	Update(ctx context.Context, card models.Card) error
	Delete(ctx context.Context, id int64) error
}

// ScheduleRepository persists per-(card, profile) scheduling state and
// selects due cards. It stores what the scheduler returns; it never
// computes scheduling itself.
type ScheduleRepository interface {
	Get(ctx context.Context, cardID, profileID int64) (*models.CardSchedule, error)
	Insert(ctx context.Context, schedule models.CardSchedule) (int64, error)
	InsertBatch(ctx context.Context, schedules []models.CardSchedule) error
	Update(ctx context.Context, schedule models.CardSchedule) error
	DueCards(ctx context.Context, profileID int64, now time.Time, limit int) ([]models.QueueCard, error)
	CountDue(ctx context.Context, profileID int64, now time.Time) (int, error)
}

// ReviewRepository handles the append-only review log
type ReviewRepository interface {
	Insert(ctx context.Context, record models.ReviewRecord) (int64, error)
	ListForCard(ctx context.Context, cardID, profileID int64, limit int) ([]models.ReviewRecord, error)
	CountSince(ctx context.Context, profileID int64, since time.Time) (int, error)
}

// StatsRepository handles statistics data access
type StatsRepository interface {
	ProfileSummary(ctx context.Context, profileID int64, now time.Time) (*models.ProfileSummary, error)
	RatingBreakdown(ctx context.Context, profileID int64) ([]models.RatingCount, error)
	DeckStats(ctx context.Context, profileID int64, now time.Time) ([]models.DeckStat, error)
}
