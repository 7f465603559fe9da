package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/memoflash/memoflash/internal/errors"
	"github.com/memoflash/memoflash/internal/fsrs"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/services"
	"github.com/memoflash/memoflash/internal/testutil/mocks"
)

func newCardService(cards *mocks.MockCardRepository, decks *mocks.MockDeckRepository, schedules *mocks.MockScheduleRepository) services.CardService {
	return services.NewCardService(cards, decks, schedules, fsrs.NewScheduler(fsrs.DefaultParams()))
}

func TestCreateCardAlsoCreatesSchedule(t *testing.T) {
	cards := new(mocks.MockCardRepository)
	decks := new(mocks.MockDeckRepository)
	schedules := new(mocks.MockScheduleRepository)
	svc := newCardService(cards, decks, schedules)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	decks.On("Get", mock.Anything, int64(3)).Return(&models.Deck{ID: 3, ProfileID: 1}, nil)
	cards.On("Insert", mock.Anything, mock.MatchedBy(func(c models.Card) bool {
		return c.DeckID == 3 && c.Front == "hola"
	})).Return(int64(10), nil)
	schedules.On("Insert", mock.Anything, mock.MatchedBy(func(s models.CardSchedule) bool {
		return s.CardID == 10 && s.ProfileID == 1 && s.State == fsrs.New && s.Due.Equal(now)
	})).Return(int64(20), nil)
	cards.On("Get", mock.Anything, int64(10)).Return(&models.Card{ID: 10, DeckID: 3, Front: "hola", Back: "hello"}, nil)

	created, err := svc.CreateCard(context.Background(), models.Card{DeckID: 3, Front: " hola ", Back: "hello"}, 1, now)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(10), created.ID)

	cards.AssertExpectations(t)
	schedules.AssertExpectations(t)
}

func TestCreateCardRejectsEmptyFront(t *testing.T) {
	cards := new(mocks.MockCardRepository)
	decks := new(mocks.MockDeckRepository)
	schedules := new(mocks.MockScheduleRepository)
	svc := newCardService(cards, decks, schedules)

	_, err := svc.CreateCard(context.Background(), models.Card{DeckID: 3, Front: "   "}, 1, time.Now())
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	cards.AssertNotCalled(t, "Insert")
}

func TestCreateCardInForeignDeckIsNotFound(t *testing.T) {
	cards := new(mocks.MockCardRepository)
	decks := new(mocks.MockDeckRepository)
	schedules := new(mocks.MockScheduleRepository)
	svc := newCardService(cards, decks, schedules)

	decks.On("Get", mock.Anything, int64(3)).Return(&models.Deck{ID: 3, ProfileID: 99}, nil)

	_, err := svc.CreateCard(context.Background(), models.Card{DeckID: 3, Front: "hola"}, 1, time.Now())
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestGetCardChecksOwnership(t *testing.T) {
	cards := new(mocks.MockCardRepository)
	decks := new(mocks.MockDeckRepository)
	schedules := new(mocks.MockScheduleRepository)
	svc := newCardService(cards, decks, schedules)

	cards.On("Get", mock.Anything, int64(10)).Return(&models.Card{ID: 10, DeckID: 3}, nil)
	decks.On("Get", mock.Anything, int64(3)).Return(&models.Deck{ID: 3, ProfileID: 99}, nil)

	_, err := svc.GetCard(context.Background(), 10, 1)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestUpdateCardKeepsDeck(t *testing.T) {
	cards := new(mocks.MockCardRepository)
	decks := new(mocks.MockDeckRepository)
	schedules := new(mocks.MockScheduleRepository)
	svc := newCardService(cards, decks, schedules)

	cards.On("Get", mock.Anything, int64(10)).Return(&models.Card{ID: 10, DeckID: 3, Front: "old"}, nil)
	decks.On("Get", mock.Anything, int64(3)).Return(&models.Deck{ID: 3, ProfileID: 1}, nil)
	cards.On("Update", mock.Anything, mock.MatchedBy(func(c models.Card) bool {
		return c.ID == 10 && c.DeckID == 3 && c.Front == "new front"
	})).Return(nil)

	err := svc.UpdateCard(context.Background(), models.Card{ID: 10, DeckID: 555, Front: "new front"}, 1)
	require.NoError(t, err)
	cards.AssertExpectations(t)
}
