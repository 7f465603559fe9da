package services

import (
	"context"
	"strings"
	"time"

	"github.com/memoflash/memoflash/internal/errors"
	"github.com/memoflash/memoflash/internal/fsrs"
	"github.com/memoflash/memoflash/internal/logger"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/repository"
)

// CardService handles card content business logic
type CardService interface {
	GetCard(ctx context.Context, id, profileID int64) (*models.Card, error)
	ListCards(ctx context.Context, profileID int64, filter models.CardFilter) ([]models.Card, int, error)
	CreateCard(ctx context.Context, card models.Card, profileID int64, now time.Time) (*models.Card, error)
	UpdateCard(ctx context.Context, card models.Card, profileID int64) error
	DeleteCard(ctx context.Context, id, profileID int64) error
}

type cardService struct {
	cards     repository.CardRepository
	decks     repository.DeckRepository
	schedules repository.ScheduleRepository
	scheduler *fsrs.Scheduler
}

// NewCardService creates a new CardService
func NewCardService(cards repository.CardRepository, decks repository.DeckRepository, schedules repository.ScheduleRepository, scheduler *fsrs.Scheduler) CardService {
	return &cardService{cards: cards, decks: decks, schedules: schedules, scheduler: scheduler}
}

// getOwnedCard loads a card and verifies its deck belongs to the profile.
func (s *cardService) getOwnedCard(ctx context.Context, id, profileID int64) (*models.Card, error) {
	card, err := s.cards.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", id)
	}
	deck, err := s.decks.Get(ctx, card.DeckID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if deck == nil || deck.ProfileID != profileID {
		return nil, errors.NewNotFoundError("card", id)
	}
	return card, nil
}

func (s *cardService) GetCard(ctx context.Context, id, profileID int64) (*models.Card, error) {
	return s.getOwnedCard(ctx, id, profileID)
}

func (s *cardService) ListCards(ctx context.Context, profileID int64, filter models.CardFilter) ([]models.Card, int, error) {
	if filter.DeckID != 0 {
		deck, err := s.decks.Get(ctx, filter.DeckID)
		if err != nil {
			return nil, 0, errors.NewInternalError(err)
		}
		if deck == nil || deck.ProfileID != profileID {
			return nil, 0, errors.NewNotFoundError("deck", filter.DeckID)
		}
	}

	cards, err := s.cards.List(ctx, filter)
	if err != nil {
		return nil, 0, errors.NewInternalError(err)
	}
	total, err := s.cards.Count(ctx, filter)
	if err != nil {
		return nil, 0, errors.NewInternalError(err)
	}
	return cards, total, nil
}

func (s *cardService) CreateCard(ctx context.Context, card models.Card, profileID int64, now time.Time) (*models.Card, error) {
	log := logger.FromContext(ctx)

	card.Front = strings.TrimSpace(card.Front)
	card.Back = strings.TrimSpace(card.Back)
	if card.Front == "" {
		return nil, errors.NewValidationError("front", "must not be empty")
	}

	deck, err := s.decks.Get(ctx, card.DeckID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if deck == nil || deck.ProfileID != profileID {
		return nil, errors.NewNotFoundError("deck", card.DeckID)
	}

	id, err := s.cards.Insert(ctx, card)
	if err != nil {
		log.Error("failed to insert card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	card.ID = id

	// A new card enters the owner's collection immediately: a fresh
	// scheduling state, due now.
	schedule := newScheduleRow(s.scheduler, id, profileID, now)
	if _, err := s.schedules.Insert(ctx, schedule); err != nil {
		log.Error("failed to insert schedule for card %d: %v", id, err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("card created: id=%d, deck_id=%d", id, card.DeckID)
	created, err := s.cards.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return created, nil
}

func (s *cardService) UpdateCard(ctx context.Context, card models.Card, profileID int64) error {
	log := logger.FromContext(ctx)

	existing, err := s.getOwnedCard(ctx, card.ID, profileID)
	if err != nil {
		return err
	}

	card.Front = strings.TrimSpace(card.Front)
	card.Back = strings.TrimSpace(card.Back)
	if card.Front == "" {
		return errors.NewValidationError("front", "must not be empty")
	}
	card.DeckID = existing.DeckID // content edits never move cards across decks

	if err := s.cards.Update(ctx, card); err != nil {
		log.Error("failed to update card: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *cardService) DeleteCard(ctx context.Context, id, profileID int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.getOwnedCard(ctx, id, profileID); err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, id); err != nil {
		log.Error("failed to delete card: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("card deleted: id=%d", id)
	return nil
}

// newScheduleRow builds the persisted form of a never-reviewed card state.
func newScheduleRow(scheduler *fsrs.Scheduler, cardID, profileID int64, now time.Time) models.CardSchedule {
	state := scheduler.NewCard(now)
	row := models.CardSchedule{CardID: cardID, ProfileID: profileID}
	row.ApplyMemoryState(state)
	return row
}
