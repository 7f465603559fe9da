package services

import (
	"context"
	"time"

	"github.com/memoflash/memoflash/internal/deckfile"
	"github.com/memoflash/memoflash/internal/errors"
	"github.com/memoflash/memoflash/internal/fsrs"
	"github.com/memoflash/memoflash/internal/logger"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/repository"
)

// ImportService bulk-loads parsed deck file entries into a deck, creating
// both card content and fresh scheduling state for the deck's owner.
type ImportService interface {
	ImportDeck(ctx context.Context, deckID, profileID int64, entries []deckfile.Entry, now time.Time) (int, error)
}

type importService struct {
	cards     repository.CardRepository
	schedules repository.ScheduleRepository
	scheduler *fsrs.Scheduler
}

// NewImportService creates a new ImportService
func NewImportService(cards repository.CardRepository, schedules repository.ScheduleRepository, scheduler *fsrs.Scheduler) ImportService {
	return &importService{cards: cards, schedules: schedules, scheduler: scheduler}
}

func (s *importService) ImportDeck(ctx context.Context, deckID, profileID int64, entries []deckfile.Entry, now time.Time) (int, error) {
	log := logger.FromContext(ctx)

	if len(entries) == 0 {
		return 0, errors.NewValidationError("entries", "must not be empty")
	}

	cards := make([]models.Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, models.Card{DeckID: deckID, Front: e.Front, Back: e.Back})
	}

	ids, err := s.cards.InsertBatch(ctx, cards)
	if err != nil {
		log.Error("failed to insert imported cards for deck %d: %v", deckID, err)
		return 0, errors.NewInternalError(err)
	}

	schedules := make([]models.CardSchedule, 0, len(ids))
	for _, id := range ids {
		schedules = append(schedules, newScheduleRow(s.scheduler, id, profileID, now))
	}
	if err := s.schedules.InsertBatch(ctx, schedules); err != nil {
		log.Error("failed to insert schedules for deck %d: %v", deckID, err)
		return 0, errors.NewInternalError(err)
	}

	log.Info("deck import complete: deck_id=%d, cards=%d", deckID, len(ids))
	return len(ids), nil
}
