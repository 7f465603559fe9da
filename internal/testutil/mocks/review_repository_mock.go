package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/memoflash/memoflash/internal/models"
)

// MockReviewRepository is a mock implementation of repository.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Insert(ctx context.Context, record models.ReviewRecord) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) ListForCard(ctx context.Context, cardID, profileID int64, limit int) ([]models.ReviewRecord, error) {
	args := m.Called(ctx, cardID, profileID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewRecord), args.Error(1)
}

func (m *MockReviewRepository) CountSince(ctx context.Context, profileID int64, since time.Time) (int, error) {
	args := m.Called(ctx, profileID, since)
	return args.Int(0), args.Error(1)
}
