package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/memoflash/memoflash/internal/models"
)

// MockScheduleRepository is a mock implementation of repository.ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Get(ctx context.Context, cardID, profileID int64) (*models.CardSchedule, error) {
	args := m.Called(ctx, cardID, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CardSchedule), args.Error(1)
}

func (m *MockScheduleRepository) Insert(ctx context.Context, schedule models.CardSchedule) (int64, error) {
	args := m.Called(ctx, schedule)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduleRepository) InsertBatch(ctx context.Context, schedules []models.CardSchedule) error {
	args := m.Called(ctx, schedules)
	return args.Error(0)
}

func (m *MockScheduleRepository) Update(ctx context.Context, schedule models.CardSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) DueCards(ctx context.Context, profileID int64, now time.Time, limit int) ([]models.QueueCard, error) {
	args := m.Called(ctx, profileID, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QueueCard), args.Error(1)
}

func (m *MockScheduleRepository) CountDue(ctx context.Context, profileID int64, now time.Time) (int, error) {
	args := m.Called(ctx, profileID, now)
	return args.Int(0), args.Error(1)
}
