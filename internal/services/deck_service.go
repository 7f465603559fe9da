package services

import (
	"context"
	"strings"

	"github.com/memoflash/memoflash/internal/errors"
	"github.com/memoflash/memoflash/internal/logger"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/repository"
)

// DeckService handles deck business logic
type DeckService interface {
	GetDeck(ctx context.Context, id, profileID int64) (*models.Deck, error)
	ListDecks(ctx context.Context, profileID int64) ([]models.Deck, error)
	CreateDeck(ctx context.Context, deck models.Deck) (*models.Deck, error)
	UpdateDeck(ctx context.Context, deck models.Deck) error
	DeleteDeck(ctx context.Context, id, profileID int64) error
}

type deckService struct {
	decks repository.DeckRepository
}

// NewDeckService creates a new DeckService
func NewDeckService(decks repository.DeckRepository) DeckService {
	return &deckService{decks: decks}
}

// getOwned loads a deck and verifies it belongs to the profile. Decks of
// other learners are reported as not found, not as forbidden.
func (s *deckService) getOwned(ctx context.Context, id, profileID int64) (*models.Deck, error) {
	deck, err := s.decks.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if deck == nil || deck.ProfileID != profileID {
		return nil, errors.NewNotFoundError("deck", id)
	}
	return deck, nil
}

func (s *deckService) GetDeck(ctx context.Context, id, profileID int64) (*models.Deck, error) {
	return s.getOwned(ctx, id, profileID)
}

func (s *deckService) ListDecks(ctx context.Context, profileID int64) ([]models.Deck, error) {
	decks, err := s.decks.List(ctx, profileID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return decks, nil
}

func (s *deckService) CreateDeck(ctx context.Context, deck models.Deck) (*models.Deck, error) {
	log := logger.FromContext(ctx)

	deck.Name = strings.TrimSpace(deck.Name)
	if deck.Name == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}

	id, err := s.decks.Insert(ctx, deck)
	if err != nil {
		log.Error("failed to create deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	deck.ID = id
	log.Info("deck created: id=%d, name=%s", id, deck.Name)

	created, err := s.decks.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return created, nil
}

func (s *deckService) UpdateDeck(ctx context.Context, deck models.Deck) error {
	log := logger.FromContext(ctx)

	if _, err := s.getOwned(ctx, deck.ID, deck.ProfileID); err != nil {
		return err
	}

	deck.Name = strings.TrimSpace(deck.Name)
	if deck.Name == "" {
		return errors.NewValidationError("name", "must not be empty")
	}

	if err := s.decks.Update(ctx, deck); err != nil {
		log.Error("failed to update deck: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *deckService) DeleteDeck(ctx context.Context, id, profileID int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.getOwned(ctx, id, profileID); err != nil {
		return err
	}

	if err := s.decks.Delete(ctx, id); err != nil {
		log.Error("failed to delete deck: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("deck deleted: id=%d", id)
	return nil
}
