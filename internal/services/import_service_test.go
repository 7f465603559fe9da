package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/memoflash/memoflash/internal/deckfile"
	apperrors "github.com/memoflash/memoflash/internal/errors"
	"github.com/memoflash/memoflash/internal/fsrs"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/services"
	"github.com/memoflash/memoflash/internal/testutil/mocks"
)

func TestImportDeckCreatesCardsAndSchedules(t *testing.T) {
	cards := new(mocks.MockCardRepository)
	schedules := new(mocks.MockScheduleRepository)
	svc := services.NewImportService(cards, schedules, fsrs.NewScheduler(fsrs.DefaultParams()))

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []deckfile.Entry{
		{Front: "hola", Back: "hello"},
		{Front: "adios", Back: "goodbye"},
	}

	cards.On("InsertBatch", mock.Anything, mock.MatchedBy(func(batch []models.Card) bool {
		return len(batch) == 2 && batch[0].DeckID == 3 && batch[0].Front == "hola"
	})).Return([]int64{10, 11}, nil)

	schedules.On("InsertBatch", mock.Anything, mock.MatchedBy(func(batch []models.CardSchedule) bool {
		if len(batch) != 2 {
			return false
		}
		// Fresh scheduling state for the deck owner, due immediately.
		first := batch[0]
		return first.CardID == 10 && first.ProfileID == 1 &&
			first.State == fsrs.New && first.Due.Equal(now) &&
			first.Reps == 0 && first.Stability == 0
	})).Return(nil)

	count, err := svc.ImportDeck(context.Background(), 3, 1, entries, now)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	cards.AssertExpectations(t)
	schedules.AssertExpectations(t)
}

func TestImportDeckRejectsEmptyEntries(t *testing.T) {
	cards := new(mocks.MockCardRepository)
	schedules := new(mocks.MockScheduleRepository)
	svc := services.NewImportService(cards, schedules, fsrs.NewScheduler(fsrs.DefaultParams()))

	_, err := svc.ImportDeck(context.Background(), 3, 1, nil, time.Now())
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	cards.AssertNotCalled(t, "InsertBatch")
}
